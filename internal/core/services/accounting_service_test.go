package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portssvc "github.com/kasozib/bar_pos_backend/internal/core/ports/services"
	"github.com/kasozib/bar_pos_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockSaleRepo    *MockSaleRepository
	mockExpenseRepo *MockExpenseRepository
	mockVoucherRepo *MockVoucherRepository
	service         portssvc.AccountingSvcFacade
}

func (suite *AccountingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.service = services.NewAccountingService(
		suite.mockAccountRepo,
		suite.mockSaleRepo,
		suite.mockExpenseRepo,
		suite.mockVoucherRepo,
	)
}

func (suite *AccountingServiceTestSuite) expectSnapshot(
	accounts []domain.Account,
	sales []domain.Sale,
	expenses []domain.Expense,
	vouchers []domain.Voucher,
) {
	suite.mockAccountRepo.On("ListAccounts", context.Background()).Return(accounts, nil)
	suite.mockSaleRepo.On("ListSales", context.Background()).Return(sales, nil)
	suite.mockExpenseRepo.On("ListExpenses", context.Background()).Return(expenses, nil)
	suite.mockVoucherRepo.On("ListVouchers", context.Background()).Return(vouchers, nil)
}

func (suite *AccountingServiceTestSuite) TestLedgers_DerivedFromSnapshot() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "a1", Name: domain.AccountCashBank, Type: domain.Asset},
		{AccountID: "a2", Name: domain.AccountSales, Type: domain.Revenue},
	}
	sales := []domain.Sale{
		{
			SaleID:        "s1",
			ReceiptNumber: "R-1",
			Total:         decimal.NewFromInt(25000),
			TotalCost:     decimal.NewFromInt(15000),
			Profit:        decimal.NewFromInt(10000),
			PaymentMethod: domain.PaymentCash,
			Status:        domain.SalePaid,
			CreatedAt:     time.Date(2025, time.April, 3, 14, 30, 0, 0, time.UTC),
		},
	}

	suite.expectSnapshot(accounts, sales, []domain.Expense{}, []domain.Voucher{})

	ledgers, err := suite.service.Ledgers(ctx)

	suite.Require().NoError(err)
	cash, ok := ledgers[domain.AccountCashBank]
	suite.Require().True(ok)
	suite.Require().Len(cash.Postings, 1)
	suite.True(cash.Balance.Equal(decimal.NewFromInt(25000)))
	suite.Require().NotNil(cash.Account)
	suite.Equal(domain.Asset, cash.Account.Type)

	salesLedger := ledgers[domain.AccountSales]
	suite.True(salesLedger.Balance.Equal(decimal.NewFromInt(-25000)))
}

func (suite *AccountingServiceTestSuite) TestTrialBalance_BalancedOverSnapshot() {
	ctx := context.Background()
	sales := []domain.Sale{
		{
			SaleID:        "s1",
			ReceiptNumber: "R-1",
			Total:         decimal.NewFromInt(40000),
			TotalCost:     decimal.NewFromInt(22000),
			Profit:        decimal.NewFromInt(18000),
			PaymentMethod: domain.PaymentCard,
			Status:        domain.SalePaid,
			CreatedAt:     time.Date(2025, time.April, 3, 9, 0, 0, 0, time.UTC),
		},
	}
	expenses := []domain.Expense{
		{ExpenseID: "e1", Description: "Gas refill", Amount: decimal.NewFromInt(5000), CreatedAt: time.Date(2025, time.April, 3, 11, 0, 0, 0, time.UTC)},
	}

	suite.expectSnapshot([]domain.Account{}, sales, expenses, []domain.Voucher{})

	tb, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.True(tb.Balanced)
	suite.True(tb.Totals.Debit.Equal(tb.Totals.Credit))
}

func (suite *AccountingServiceTestSuite) TestDayBook_ChronologicalAcrossSources() {
	ctx := context.Background()
	sales := []domain.Sale{
		{
			SaleID: "s1", ReceiptNumber: "R-2",
			Total: decimal.NewFromInt(10000), TotalCost: decimal.NewFromInt(6000), Profit: decimal.NewFromInt(4000),
			PaymentMethod: domain.PaymentCash, Status: domain.SalePaid,
			CreatedAt: time.Date(2025, time.April, 5, 12, 0, 0, 0, time.UTC),
		},
	}
	vouchers := []domain.Voucher{
		{
			VoucherID: "v1", VoucherNumber: "V-1",
			Date: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			Type: domain.VoucherPayment, Narration: "Rent",
			DebitAccount: domain.AccountExpenses, CreditAccount: domain.AccountCashBank,
			Amount: decimal.NewFromInt(300000),
		},
	}

	suite.expectSnapshot([]domain.Account{}, sales, []domain.Expense{}, vouchers)

	txns, err := suite.service.DayBook(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 3)
	suite.Equal("Rent", txns[0].Narration)
	for i := 1; i < len(txns); i++ {
		suite.False(txns[i].Date.Before(txns[i-1].Date))
	}
}

func (suite *AccountingServiceTestSuite) TestSnapshotError_Propagates() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(nil, context.DeadlineExceeded)

	_, err := suite.service.TrialBalance(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "ListSales", ctx)
}

func TestAccountingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountingServiceTestSuite))
}
