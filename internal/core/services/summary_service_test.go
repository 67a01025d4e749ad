package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	mockTxnRepo      *MockTransactionRepository
	mockBudgetRepo   *MockBudgetRepository
	service          portssvc.SummarySvc
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.service = services.NewSummaryService(suite.mockAccountRepo, suite.mockCategoryRepo, suite.mockTxnRepo, suite.mockBudgetRepo)
}

func expenseCategory() domain.Category {
	return domain.Category{RecordMeta: domain.RecordMeta{ID: "cat-food"}, Name: "Food", Type: domain.CategoryExpense}
}

func (suite *SummaryServiceTestSuite) TestSummarize_MonthScenario() {
	ctx := context.Background()
	account := domain.Account{
		RecordMeta:     domain.RecordMeta{ID: "acc-a"},
		Name:           "Cash",
		Type:           domain.AccountCash,
		InitialBalance: decimal.NewFromInt(100),
		Color:          "#6366F1",
	}
	category := expenseCategory()
	txn := domain.Transaction{
		RecordMeta: domain.RecordMeta{ID: "t1"},
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(30),
		Type:       domain.TransactionExpense,
		CategoryID: category.ID,
		AccountID:  account.ID,
	}
	budget := domain.Budget{
		RecordMeta: domain.RecordMeta{ID: "b1"},
		CategoryID: category.ID,
		Month:      "2024-03",
		Amount:     decimal.NewFromInt(50),
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{category}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{txn}, nil).Twice()
	suite.mockBudgetRepo.On("ListBudgets", ctx).Return([]domain.Budget{budget}, nil).Once()

	summary, err := suite.service.Summarize(ctx, "2024-03")

	suite.Require().NoError(err)
	suite.Equal("0", summary.TotalIncome.String())
	suite.Equal("30", summary.TotalExpense.String())
	suite.Equal("70", summary.Accounts[account.ID].Balance.String())
	suite.Equal("70", summary.OverallBalance.String())
	suite.Len(summary.Categories, 1)
	suite.Len(summary.Transactions, 1)

	suite.Require().Len(summary.Budgets, 1)
	status := summary.Budgets[0]
	suite.Equal("b1", status.BudgetID)
	suite.Equal("2024-03", status.Month)
	suite.Equal("30", status.Spent.String())
	suite.Equal("20", status.Remaining.String())
}

func (suite *SummaryServiceTestSuite) TestSummarize_BalancesAreLifetime() {
	ctx := context.Background()
	account := domain.Account{RecordMeta: domain.RecordMeta{ID: "acc-a"}, Name: "Bank", Type: domain.AccountBank, InitialBalance: decimal.NewFromInt(100)}
	februaryIncome := domain.Transaction{
		RecordMeta: domain.RecordMeta{ID: "feb"},
		Date:       time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(40),
		Type:       domain.TransactionIncome,
		AccountID:  account.ID,
		CategoryID: "cat-salary",
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{februaryIncome}, nil).Twice()
	suite.mockBudgetRepo.On("ListBudgets", ctx).Return([]domain.Budget{}, nil).Once()

	summary, err := suite.service.Summarize(ctx, "2024-03")

	suite.Require().NoError(err)
	// March totals exclude the February transaction...
	suite.Equal("0", summary.TotalIncome.String())
	suite.Empty(summary.Transactions)
	// ...but the account balance covers the full history.
	suite.Equal("140", summary.Accounts[account.ID].Balance.String())
	suite.Equal("140", summary.OverallBalance.String())
}

func (suite *SummaryServiceTestSuite) TestSummarize_NoMonth() {
	ctx := context.Background()
	account := domain.Account{RecordMeta: domain.RecordMeta{ID: "acc-a"}, Name: "Cash", InitialBalance: decimal.Zero}
	transactions := []domain.Transaction{
		{RecordMeta: domain.RecordMeta{ID: "t1"}, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(200), Type: domain.TransactionIncome, AccountID: account.ID},
		{RecordMeta: domain.RecordMeta{ID: "t2"}, Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(75), Type: domain.TransactionExpense, AccountID: account.ID},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(transactions, nil).Twice()

	summary, err := suite.service.Summarize(ctx, "")

	suite.Require().NoError(err)
	suite.Equal("200", summary.TotalIncome.String())
	suite.Equal("75", summary.TotalExpense.String())
	suite.Equal("125", summary.OverallBalance.String())
	// Budget status is only computed when a month is supplied.
	suite.Empty(summary.Budgets)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "ListBudgets", ctx)
}

func (suite *SummaryServiceTestSuite) TestSummarize_OverspendGoesNegative() {
	ctx := context.Background()
	category := expenseCategory()
	txn := domain.Transaction{
		RecordMeta: domain.RecordMeta{ID: "t1"},
		Date:       time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(80.25),
		Type:       domain.TransactionExpense,
		CategoryID: category.ID,
		AccountID:  "acc-a",
	}
	budget := domain.Budget{RecordMeta: domain.RecordMeta{ID: "b1"}, CategoryID: category.ID, Month: "2024-03", Amount: decimal.NewFromInt(50)}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{category}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{txn}, nil).Twice()
	suite.mockBudgetRepo.On("ListBudgets", ctx).Return([]domain.Budget{budget}, nil).Once()

	summary, err := suite.service.Summarize(ctx, "2024-03")

	suite.Require().NoError(err)
	suite.Require().Len(summary.Budgets, 1)
	suite.Equal("80.25", summary.Budgets[0].Spent.String())
	suite.Equal("-30.25", summary.Budgets[0].Remaining.String())
}

func (suite *SummaryServiceTestSuite) TestSummarize_DuplicateBudgetsEachReportFullSpend() {
	ctx := context.Background()
	category := expenseCategory()
	txn := domain.Transaction{
		RecordMeta: domain.RecordMeta{ID: "t1"},
		Date:       time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(30),
		Type:       domain.TransactionExpense,
		CategoryID: category.ID,
		AccountID:  "acc-a",
	}
	budgets := []domain.Budget{
		{RecordMeta: domain.RecordMeta{ID: "b1"}, CategoryID: category.ID, Month: "2024-03", Amount: decimal.NewFromInt(50)},
		{RecordMeta: domain.RecordMeta{ID: "b2"}, CategoryID: category.ID, Month: "2024-03", Amount: decimal.NewFromInt(100)},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{category}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{txn}, nil).Twice()
	suite.mockBudgetRepo.On("ListBudgets", ctx).Return(budgets, nil).Once()

	summary, err := suite.service.Summarize(ctx, "2024-03")

	suite.Require().NoError(err)
	suite.Require().Len(summary.Budgets, 2)
	// Spend is not divided across duplicate budgets for the same pair.
	suite.Equal("30", summary.Budgets[0].Spent.String())
	suite.Equal("30", summary.Budgets[1].Spent.String())
	suite.Equal("20", summary.Budgets[0].Remaining.String())
	suite.Equal("70", summary.Budgets[1].Remaining.String())
}

func (suite *SummaryServiceTestSuite) TestSummarize_RoundingAfterSummation() {
	ctx := context.Background()
	accounts := []domain.Account{
		{RecordMeta: domain.RecordMeta{ID: "acc-1"}, Name: "A", InitialBalance: decimal.RequireFromString("0.005")},
		{RecordMeta: domain.RecordMeta{ID: "acc-2"}, Name: "B", InitialBalance: decimal.RequireFromString("0.005")},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Twice()

	summary, err := suite.service.Summarize(ctx, "")

	suite.Require().NoError(err)
	// Per-account balances round half away from zero first, the overall
	// balance is the rounded sum of those rounded balances.
	suite.Equal("0.01", summary.Accounts["acc-1"].Balance.String())
	suite.Equal("0.01", summary.Accounts["acc-2"].Balance.String())
	suite.Equal("0.02", summary.OverallBalance.String())
}

func (suite *SummaryServiceTestSuite) TestSummarize_CapsTransactionsAtFifty() {
	ctx := context.Background()
	transactions := make([]domain.Transaction, 0, 60)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		transactions = append(transactions, domain.Transaction{
			RecordMeta: domain.RecordMeta{ID: fmt.Sprintf("t%d", i), CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			Date:       base.AddDate(0, 0, i%28),
			Amount:     decimal.NewFromInt(1),
			Type:       domain.TransactionExpense,
			AccountID:  "acc-a",
			CategoryID: "cat-food",
		})
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(transactions, nil).Twice()
	suite.mockBudgetRepo.On("ListBudgets", ctx).Return([]domain.Budget{}, nil).Once()

	summary, err := suite.service.Summarize(ctx, "2024-03")

	suite.Require().NoError(err)
	suite.Len(summary.Transactions, 50)
	// The cap keeps the most recent entries: latest date first, and the
	// total still covers all sixty.
	suite.Equal("60", summary.TotalExpense.String())
	suite.False(summary.Transactions[0].Date.Before(summary.Transactions[49].Date))
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
