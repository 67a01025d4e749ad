package repositories

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// AccountRepository provides typed access to the account collection.
type AccountRepository interface {
	// SaveAccount persists a new account and returns the store-assigned id.
	SaveAccount(ctx context.Context, account domain.Account) (string, error)

	// FindAccountByID retrieves a specific account, or apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// CategoryRepository provides typed access to the category collection.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) (string, error)
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// TransactionRepository provides typed access to the transaction collection.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, transaction domain.Transaction) (string, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// BudgetRepository provides typed access to the budget collection.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) (string, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}
