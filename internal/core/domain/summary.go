package domain

import (
	"github.com/shopspring/decimal"
)

// AccountBalance is one account's lifetime balance inside a summary.
type AccountBalance struct {
	Name    string          `json:"name"`
	Color   string          `json:"color"`
	Balance decimal.Decimal `json:"balance"`
}

// BudgetStatus reports spend against a single budget record for the
// summarized month. Remaining goes negative on overspend.
type BudgetStatus struct {
	BudgetID   string          `json:"budget_id"`
	CategoryID string          `json:"category_id"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// Summary is the monthly dashboard report: month-scoped totals,
// lifetime per-account balances, the full category list, the most
// recent transactions of the month, and budget statuses.
type Summary struct {
	TotalIncome    decimal.Decimal           `json:"total_income"`
	TotalExpense   decimal.Decimal           `json:"total_expense"`
	OverallBalance decimal.Decimal           `json:"overall_balance"`
	Accounts       map[string]AccountBalance `json:"accounts"`
	Categories     []Category                `json:"categories"`
	Transactions   []Transaction             `json:"transactions"`
	Budgets        []BudgetStatus            `json:"budgets"`
}
