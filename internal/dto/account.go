package dto

import (
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=cash bank ewallet"`
	InitialBalance float64 `json:"initial_balance" binding:"omitempty,gte=0"`
	Color          string  `json:"color" binding:"omitempty,hexcolor"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Color          string          `json:"color"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             acc.ID,
		Name:           acc.Name,
		Type:           string(acc.Type),
		InitialBalance: acc.InitialBalance,
		Color:          acc.Color,
		CreatedAt:      acc.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// CreatedResponse is the body returned by every write endpoint: only
// the newly created identifier, no echo of the record.
type CreatedResponse struct {
	ID string `json:"id"`
}
