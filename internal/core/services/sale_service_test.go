package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portssvc "github.com/kasozib/bar_pos_backend/internal/core/ports/services"
	"github.com/kasozib/bar_pos_backend/internal/core/services"
	"github.com/kasozib/bar_pos_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo      *MockSaleRepository
	mockInventoryRepo *MockInventoryRepository
	service           portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockInventoryRepo)
}

func (suite *SaleServiceTestSuite) TestCreateSale_TotalsRecomputedFromItems() {
	ctx := context.Background()
	cashierUserID := uuid.NewString()
	req := dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Name: "Lager 500ml", Quantity: 3, UnitPrice: decimal.NewFromInt(5000), UnitCost: decimal.NewFromInt(3200)},
			{Name: "Chips", Quantity: 2, UnitPrice: decimal.NewFromInt(8000), UnitCost: decimal.NewFromInt(4500)},
		},
		PaymentMethod: domain.PaymentCash,
		CashierName:   "Alex",
	}

	// 3*5000 + 2*8000 = 31000; cost 3*3200 + 2*4500 = 18600; profit 12400
	suite.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.Total.Equal(decimal.NewFromInt(31000)) &&
			s.TotalCost.Equal(decimal.NewFromInt(18600)) &&
			s.Profit.Equal(decimal.NewFromInt(12400)) &&
			s.Status == domain.SalePaid &&
			strings.HasPrefix(s.ReceiptNumber, "R-")
	})).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, cashierUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.Equal(domain.SalePaid, sale.Status)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "AdjustStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_CreditStartsUnpaid() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Name: "Whisky bottle", Quantity: 1, UnitPrice: decimal.NewFromInt(120000), UnitCost: decimal.NewFromInt(80000)},
		},
		PaymentMethod: domain.PaymentCredit,
		CustomerInfo:  &dto.CustomerInfoRequest{Name: "Regular Joe", Contact: "0712"},
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.Status == domain.SaleUnpaid && s.CustomerInfo != nil && s.CustomerInfo.Name == "Regular Joe"
	})).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.SaleUnpaid, sale.Status)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_CreditWithoutCustomerRejected() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Name: "Soda", Quantity: 1, UnitPrice: decimal.NewFromInt(2000)},
		},
		PaymentMethod: domain.PaymentCredit,
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_UnknownPaymentMethodRejected() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Name: "Soda", Quantity: 1, UnitPrice: decimal.NewFromInt(2000)},
		},
		PaymentMethod: domain.PaymentMethod("cheque"),
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestCreateSale_DecrementsStockForLinkedItems() {
	ctx := context.Background()
	cashierUserID := uuid.NewString()
	itemID := uuid.NewString()
	req := dto.CreateSaleRequest{
		ReceiptNumber: "R-0042",
		Items: []dto.SaleItemRequest{
			{ItemID: itemID, Name: "Lager 500ml", Quantity: 4, UnitPrice: decimal.NewFromInt(5000), UnitCost: decimal.NewFromInt(3200)},
			{Name: "Open food", Quantity: 1, UnitPrice: decimal.NewFromInt(10000)},
		},
		PaymentMethod: domain.PaymentCard,
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.ReceiptNumber == "R-0042"
	})).Return(nil).Once()
	suite.mockInventoryRepo.On("AdjustStock", ctx, itemID, -4, cashierUserID).Return(16, nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, cashierUserID)

	suite.Require().NoError(err)
	suite.Equal("R-0042", sale.ReceiptNumber)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_StockFailureDoesNotVoidSale() {
	ctx := context.Background()
	cashierUserID := uuid.NewString()
	itemID := uuid.NewString()
	req := dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ItemID: itemID, Name: "Lager 500ml", Quantity: 2, UnitPrice: decimal.NewFromInt(5000)},
		},
		PaymentMethod: domain.PaymentMobile,
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockInventoryRepo.On("AdjustStock", ctx, itemID, -2, cashierUserID).
		Return(0, apperrors.ErrNotFound).Once()

	sale, err := suite.service.CreateSale(ctx, req, cashierUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestMarkSalePaid_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	saleID := uuid.NewString()
	settledAt := time.Now()
	settled := &domain.Sale{
		SaleID:        saleID,
		Status:        domain.SalePaid,
		PaymentMethod: domain.PaymentCredit,
		PaidAt:        &settledAt,
		PaidBy:        updaterUserID,
	}

	suite.mockSaleRepo.On("MarkSalePaid", ctx, saleID, updaterUserID).Return(nil).Once()
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(settled, nil).Once()

	sale, err := suite.service.MarkSalePaid(ctx, saleID, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.SalePaid, sale.Status)
	suite.Equal(updaterUserID, sale.PaidBy)
	suite.NotNil(sale.PaidAt)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestMarkSalePaid_AlreadyPaidConflict() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockSaleRepo.On("MarkSalePaid", ctx, saleID, mock.AnythingOfType("string")).
		Return(apperrors.ErrConflict).Once()

	sale, err := suite.service.MarkSalePaid(ctx, saleID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
