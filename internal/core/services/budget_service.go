package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo   portsrepo.BudgetRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewBudgetService creates the budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, categoryRepo portsrepo.CategoryRepository) portssvc.BudgetSvc {
	return &budgetService{budgetRepo: budgetRepo, categoryRepo: categoryRepo}
}

var _ portssvc.BudgetSvc = (*budgetService)(nil)

// CreateBudget verifies the referenced category exists and is
// expense-typed, then inserts. No uniqueness is enforced: several
// budgets may exist for the same (category, month) pair.
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: category not found", apperrors.ErrNotFound)
		}
		logger.Error("Failed to check category reference", slog.String("error", err.Error()), slog.String("category_id", req.CategoryID))
		return "", err
	}
	if category.Type != domain.CategoryExpense {
		return "", apperrors.ErrInvalidCategoryType
	}

	budget := domain.Budget{
		CategoryID: req.CategoryID,
		Month:      req.Month,
		Amount:     decimal.NewFromFloat(req.Amount),
	}

	id, err := s.budgetRepo.SaveBudget(ctx, budget)
	if err != nil {
		logger.Error("Failed to save budget in repository", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to create budget: %w", err)
	}

	logger.Info("Budget created", slog.String("budget_id", id), slog.String("month", req.Month))
	return id, nil
}

// ListBudgets retrieves budgets, filtered by exact month match when
// month is non-empty.
func (s *budgetService) ListBudgets(ctx context.Context, month string) ([]domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		logger.Error("Failed to list budgets from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	if month == "" {
		return budgets, nil
	}

	filtered := make([]domain.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Month == month {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}
