package models

import "github.com/shopspring/decimal"

type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Category string `json:"categoria"`

	Stock    int `json:"estoque"`
	MinStock int `json:"estoqueMinimo"`

	CostPrice decimal.Decimal `json:"precoCusto"`
	SalePrice decimal.Decimal `json:"precoVenda"`

	Supplier string `json:"fornecedor"`
}
