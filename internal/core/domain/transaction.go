package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction's money flow.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is an append-only fact: it affects exactly one account's
// balance and is attributable to exactly one category.
type Transaction struct {
	RecordMeta
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Type       TransactionType `json:"type"`
	CategoryID string          `json:"category_id"`
	AccountID  string          `json:"account_id"`
	Note       string          `json:"note,omitempty"`
}
