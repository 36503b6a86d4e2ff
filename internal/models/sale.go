package models

import "github.com/shopspring/decimal"

type Sale struct {
	ID int64 `json:"id"`

	ProductID int64 `json:"produtoId"`

	// nome copiado no momento da venda; não acompanha renomeações do produto
	ProductName string `json:"produtoNome"`

	Quantity  int             `json:"quantidade"`
	UnitValue decimal.Decimal `json:"valorUnitario"`

	// quantidade × valor unitário congelado na venda
	TotalValue decimal.Decimal `json:"valorTotal"`

	Date string `json:"data"` // YYYY-MM-DD
	Time string `json:"hora"` // HH:MM
}
