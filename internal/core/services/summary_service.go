package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// summaryTransactionCap bounds the transaction list returned on the
// dashboard summary.
const summaryTransactionCap = 50

type summaryService struct {
	accountRepo     portsrepo.AccountRepository
	categoryRepo    portsrepo.CategoryRepository
	transactionRepo portsrepo.TransactionRepository
	budgetRepo      portsrepo.BudgetRepository
}

// NewSummaryService creates the summary service.
func NewSummaryService(
	accountRepo portsrepo.AccountRepository,
	categoryRepo portsrepo.CategoryRepository,
	transactionRepo portsrepo.TransactionRepository,
	budgetRepo portsrepo.BudgetRepository,
) portssvc.SummarySvc {
	return &summaryService{
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

// Summarize computes the monthly dashboard report. Totals and budget
// statuses are scoped to the requested month; account balances are
// always lifetime balances over the full transaction history, so the
// transaction collection is read a second time on purpose. Folding the
// two reads into one would tempt a future change to month-scope the
// balances, which is exactly the reporting bug this keeps out.
func (s *summaryService) Summarize(ctx context.Context, month string) (*domain.Summary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for summary: %w", err)
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for summary: %w", err)
	}
	monthTxns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	if month != "" {
		monthTxns, err = filterByMonth(monthTxns, month)
		if err != nil {
			return nil, err
		}
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, txn := range monthTxns {
		switch txn.Type {
		case domain.TransactionIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case domain.TransactionExpense:
			totalExpense = totalExpense.Add(txn.Amount)
		}
	}

	allTxns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction history for summary: %w", err)
	}

	accountBalances := make(map[string]domain.AccountBalance, len(accounts))
	overallBalance := decimal.Zero
	for _, acc := range accounts {
		balance := acc.InitialBalance
		for _, txn := range allTxns {
			if txn.AccountID != acc.ID {
				continue
			}
			if txn.Type == domain.TransactionIncome {
				balance = balance.Add(txn.Amount)
			} else {
				balance = balance.Sub(txn.Amount)
			}
		}
		balance = balance.Round(2)
		accountBalances[acc.ID] = domain.AccountBalance{
			Name:    acc.Name,
			Color:   acc.Color,
			Balance: balance,
		}
		overallBalance = overallBalance.Add(balance)
	}
	overallBalance = overallBalance.Round(2)

	budgetStatuses := []domain.BudgetStatus{}
	if month != "" {
		budgets, err := s.budgetRepo.ListBudgets(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load budgets for summary: %w", err)
		}
		for _, b := range budgets {
			if b.Month != month {
				continue
			}
			spent := decimal.Zero
			for _, txn := range monthTxns {
				if txn.CategoryID == b.CategoryID && txn.Type == domain.TransactionExpense {
					spent = spent.Add(txn.Amount)
				}
			}
			spent = spent.Round(2)
			budgetStatuses = append(budgetStatuses, domain.BudgetStatus{
				BudgetID:   b.ID,
				CategoryID: b.CategoryID,
				Month:      month,
				Amount:     b.Amount,
				Spent:      spent,
				// Overspend stays visible as a negative remainder.
				Remaining: b.Amount.Sub(spent).Round(2),
			})
		}
	}

	sortTransactionsDesc(monthTxns)
	if len(monthTxns) > summaryTransactionCap {
		monthTxns = monthTxns[:summaryTransactionCap]
	}

	logger.Info("Summary computed",
		slog.String("month", month),
		slog.Int("accounts", len(accounts)),
		slog.Int("transactions", len(monthTxns)),
		slog.Int("budgets", len(budgetStatuses)),
	)

	return &domain.Summary{
		TotalIncome:    totalIncome.Round(2),
		TotalExpense:   totalExpense.Round(2),
		OverallBalance: overallBalance,
		Accounts:       accountBalances,
		Categories:     categories,
		Transactions:   monthTxns,
		Budgets:        budgetStatuses,
	}, nil
}
