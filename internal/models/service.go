package models

import "github.com/shopspring/decimal"

type Service struct {
	ID    int64           `json:"id"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco"`
}
