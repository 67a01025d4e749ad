package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType identifies where the money of an account is held.
type AccountType string

const (
	AccountCash    AccountType = "cash"
	AccountBank    AccountType = "bank"
	AccountEwallet AccountType = "ewallet"
)

// DefaultAccountColor is the UI tag color applied when none is supplied.
const DefaultAccountColor = "#6366F1"

// Account represents a money holding place (e.g. a bank account or a
// cash wallet). Accounts are immutable once created.
type Account struct {
	RecordMeta
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Color          string          `json:"color"`
}
