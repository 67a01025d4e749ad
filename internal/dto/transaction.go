package dto

import (
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Type       string  `json:"type" binding:"required,oneof=income expense"`
	CategoryID string  `json:"category_id" binding:"required"`
	AccountID  string  `json:"account_id" binding:"required"`
	Note       string  `json:"note"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Month string `form:"month" binding:"omitempty,month"`
}

// TransactionResponse defines the data returned for a transaction.
// Date is rendered as an ISO-8601 calendar date.
type TransactionResponse struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	CategoryID string          `json:"category_id"`
	AccountID  string          `json:"account_id"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         txn.ID,
		Date:       txn.Date.Format(domain.DateLayout),
		Amount:     txn.Amount,
		Type:       string(txn.Type),
		CategoryID: txn.CategoryID,
		AccountID:  txn.AccountID,
		Note:       txn.Note,
		CreatedAt:  txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
