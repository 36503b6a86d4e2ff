package models

import "github.com/shopspring/decimal"

type Appointment struct {
	ID int64 `json:"id"`

	ClientName  string `json:"cliente"`
	ClientPhone string `json:"telefone"`

	ServiceName string `json:"servico"`
	BarberName  string `json:"barbeiro"`

	Date string `json:"data"`    // YYYY-MM-DD
	Time string `json:"horario"` // HH:MM

	Value decimal.Decimal `json:"valor"`

	Status string `json:"status"`
}
