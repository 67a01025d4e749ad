package dto

import (
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryParams defines query parameters for the summary endpoint.
type SummaryParams struct {
	Month string `form:"month" binding:"omitempty,month"`
}

// AccountBalanceResponse is one account entry in the summary's balances map.
type AccountBalanceResponse struct {
	Name    string          `json:"name"`
	Color   string          `json:"color"`
	Balance decimal.Decimal `json:"balance"`
}

// BudgetStatusResponse is one budget entry in the summary's budget list.
type BudgetStatusResponse struct {
	BudgetID   string          `json:"budget_id"`
	CategoryID string          `json:"category_id"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// SummaryResponse is the monthly dashboard report payload.
type SummaryResponse struct {
	TotalIncome    decimal.Decimal                   `json:"total_income"`
	TotalExpense   decimal.Decimal                   `json:"total_expense"`
	OverallBalance decimal.Decimal                   `json:"overall_balance"`
	Accounts       map[string]AccountBalanceResponse `json:"accounts"`
	Categories     []CategoryResponse                `json:"categories"`
	Transactions   []TransactionResponse             `json:"transactions"`
	Budgets        []BudgetStatusResponse            `json:"budgets"`
}

// ToSummaryResponse converts a domain.Summary to SummaryResponse.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	accounts := make(map[string]AccountBalanceResponse, len(s.Accounts))
	for id, bal := range s.Accounts {
		accounts[id] = AccountBalanceResponse{
			Name:    bal.Name,
			Color:   bal.Color,
			Balance: bal.Balance,
		}
	}

	budgets := make([]BudgetStatusResponse, len(s.Budgets))
	for i, b := range s.Budgets {
		budgets[i] = BudgetStatusResponse{
			BudgetID:   b.BudgetID,
			CategoryID: b.CategoryID,
			Month:      b.Month,
			Amount:     b.Amount,
			Spent:      b.Spent,
			Remaining:  b.Remaining,
		}
	}

	return SummaryResponse{
		TotalIncome:    s.TotalIncome,
		TotalExpense:   s.TotalExpense,
		OverallBalance: s.OverallBalance,
		Accounts:       accounts,
		Categories:     ToCategoryResponses(s.Categories),
		Transactions:   ToTransactionResponses(s.Transactions),
		Budgets:        budgets,
	}
}
