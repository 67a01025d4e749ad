package domain

import (
	"github.com/shopspring/decimal"
)

// Budget caps planned spending for one expense category in one month.
// Multiple budgets for the same (category, month) pair are permitted.
type Budget struct {
	RecordMeta
	CategoryID string          `json:"category_id"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}
