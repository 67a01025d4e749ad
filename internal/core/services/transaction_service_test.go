package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/core/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransactionSvc
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockCategoryRepo)
}

func (suite *TransactionServiceTestSuite) validRequest() (dto.CreateTransactionRequest, *domain.Account, *domain.Category) {
	account := &domain.Account{RecordMeta: domain.RecordMeta{ID: uuid.NewString()}, Name: "Cash", Type: domain.AccountCash}
	category := &domain.Category{RecordMeta: domain.RecordMeta{ID: uuid.NewString()}, Name: "Food", Type: domain.CategoryExpense}
	req := dto.CreateTransactionRequest{
		Date:       "2024-03-15",
		Amount:     30,
		Type:       "expense",
		CategoryID: category.ID,
		AccountID:  account.ID,
		Note:       "lunch",
	}
	return req, account, category
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req, account, category := suite.validRequest()
	newID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.ID).Return(account, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, category.ID).Return(category, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Date.Format("2006-01-02") == "2024-03-15" &&
			txn.Amount.Equal(decimal.NewFromInt(30)) &&
			txn.Type == domain.TransactionExpense &&
			txn.AccountID == account.ID &&
			txn.CategoryID == category.ID &&
			txn.Note == "lunch"
	})).Return(newID, nil).Once()

	id, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(newID, id)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountMissing() {
	ctx := context.Background()
	req, account, _ := suite.validRequest()

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.ID).Return(nil, apperrors.ErrNotFound).Once()

	id, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorContains(err, "account not found")
	suite.Empty(id)
	// No insertion happens when a reference is missing.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryMissing() {
	ctx := context.Background()
	req, account, category := suite.validRequest()

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.ID).Return(account, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, category.ID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorContains(err, "category not found")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_SortsByDateThenCreation() {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		{RecordMeta: domain.RecordMeta{ID: "earlier-created", CreatedAt: base}, Date: day, Type: domain.TransactionExpense, Amount: decimal.NewFromInt(5)},
		{RecordMeta: domain.RecordMeta{ID: "later-created", CreatedAt: base.Add(time.Minute)}, Date: day, Type: domain.TransactionExpense, Amount: decimal.NewFromInt(7)},
		{RecordMeta: domain.RecordMeta{ID: "newest-day", CreatedAt: base.Add(-time.Hour)}, Date: day.AddDate(0, 0, 1), Type: domain.TransactionIncome, Amount: decimal.NewFromInt(9)},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx).Return(transactions, nil).Once()

	got, err := suite.service.ListTransactions(ctx, "")

	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	// Most recent day first; within a day, most recently created first.
	suite.Equal("newest-day", got[0].ID)
	suite.Equal("later-created", got[1].ID)
	suite.Equal("earlier-created", got[2].ID)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_MonthFilter() {
	ctx := context.Background()
	transactions := []domain.Transaction{
		{RecordMeta: domain.RecordMeta{ID: "march"}, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{RecordMeta: domain.RecordMeta{ID: "april-first"}, Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx).Return(transactions, nil).Twice()

	march, err := suite.service.ListTransactions(ctx, "2024-03")
	suite.Require().NoError(err)
	suite.Require().Len(march, 1)
	suite.Equal("march", march[0].ID)

	// A month with no transactions yields an empty list, not an error.
	april24, err := suite.service.ListTransactions(ctx, "2024-05")
	suite.Require().NoError(err)
	suite.Empty(april24)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidMonth() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, "2024-13")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
