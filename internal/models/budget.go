package models

import (
	"github.com/shopspring/decimal"
)

// Budget is the stored payload shape for the budget collection.
type Budget struct {
	CategoryID string          `json:"category_id"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}
