package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is the stored payload shape for the transaction
// collection. Date is kept as a YYYY-MM-DD string in the payload.
type Transaction struct {
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	CategoryID string          `json:"category_id"`
	AccountID  string          `json:"account_id"`
	Note       string          `json:"note,omitempty"`
}
