package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	categoryRepo    portsrepo.CategoryRepository
}

// NewTransactionService creates the transaction service. The account
// and category repositories back the referential checks on writes.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
	categoryRepo portsrepo.CategoryRepository,
) portssvc.TransactionSvc {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

// CreateTransaction verifies the referenced account and category exist,
// then inserts. The check and the insert are not atomic; a write is a
// single record, so it either lands whole or fails outright.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
		}
		logger.Error("Failed to check account reference", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return "", err
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: category not found", apperrors.ErrNotFound)
		}
		logger.Error("Failed to check category reference", slog.String("error", err.Error()), slog.String("category_id", req.CategoryID))
		return "", err
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	transaction := domain.Transaction{
		Date:       date,
		Amount:     decimal.NewFromFloat(req.Amount),
		Type:       domain.TransactionType(req.Type),
		CategoryID: req.CategoryID,
		AccountID:  req.AccountID,
		Note:       req.Note,
	}

	id, err := s.transactionRepo.SaveTransaction(ctx, transaction)
	if err != nil {
		logger.Error("Failed to save transaction in repository", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.Info("Transaction created", slog.String("transaction_id", id), slog.String("type", req.Type))
	return id, nil
}

// ListTransactions retrieves transactions, optionally filtered to one
// month, most recent first.
func (s *transactionService) ListTransactions(ctx context.Context, month string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if month != "" {
		transactions, err = filterByMonth(transactions, month)
		if err != nil {
			return nil, err
		}
	}

	sortTransactionsDesc(transactions)
	return transactions, nil
}

// filterByMonth keeps transactions inside the month token's half-open
// date interval.
func filterByMonth(transactions []domain.Transaction, month string) ([]domain.Transaction, error) {
	start, next, err := domain.MonthRange(month)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if !txn.Date.Before(start) && txn.Date.Before(next) {
			filtered = append(filtered, txn)
		}
	}
	return filtered, nil
}

// sortTransactionsDesc orders by date descending, with creation time as
// the tie-break for same-day entries (later-created first).
func sortTransactionsDesc(transactions []domain.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
}
