package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the account service.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

// CreateAccount persists a new account and returns the store-assigned id.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	color := req.Color
	if color == "" {
		color = domain.DefaultAccountColor
	}

	account := domain.Account{
		Name:           req.Name,
		Type:           domain.AccountType(req.Type),
		InitialBalance: decimal.NewFromFloat(req.InitialBalance),
		Color:          color,
	}

	id, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", id), slog.String("account_name", account.Name))
	return id, nil
}

// ListAccounts retrieves every account.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
