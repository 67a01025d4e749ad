package services

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
)

// AccountSvc defines account operations. Accounts are create-and-list
// only; there is no update or delete.
type AccountSvc interface {
	// CreateAccount persists a new account and returns its id.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (string, error)

	// ListAccounts retrieves every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// CategorySvc defines category operations.
type CategorySvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (string, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// TransactionSvc defines transaction operations.
type TransactionSvc interface {
	// CreateTransaction verifies the referenced account and category
	// exist before inserting.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (string, error)

	// ListTransactions retrieves transactions, optionally filtered to
	// one month, ordered most recent first (creation order breaks
	// same-day ties). Pass an empty month for no filtering.
	ListTransactions(ctx context.Context, month string) ([]domain.Transaction, error)
}

// BudgetSvc defines budget operations.
type BudgetSvc interface {
	// CreateBudget verifies the referenced category exists and is
	// expense-typed before inserting.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (string, error)

	// ListBudgets retrieves budgets, filtered by exact month match when
	// month is non-empty.
	ListBudgets(ctx context.Context, month string) ([]domain.Budget, error)
}
