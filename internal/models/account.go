package models

import (
	"github.com/shopspring/decimal"
)

// Account is the stored payload shape for the account collection.
type Account struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Color          string          `json:"color"`
}
