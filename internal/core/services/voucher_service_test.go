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

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.VoucherSvcFacade
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockAccountRepo)
}

func (suite *VoucherServiceTestSuite) validRequest() dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		Date:          dto.NewDate(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)),
		Type:          domain.VoucherPayment,
		Narration:     "Paid supplier invoice",
		DebitAccount:  domain.AccountPayable,
		CreditAccount: domain.AccountCashBank,
		Amount:        decimal.NewFromInt(150000),
	}
}

func (suite *VoucherServiceTestSuite) expectAccountsExist(names ...string) {
	for _, name := range names {
		suite.mockAccountRepo.On("FindAccountByName", mock.Anything, name).
			Return(&domain.Account{AccountID: uuid.NewString(), Name: name}, nil).Once()
	}
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := suite.validRequest()

	suite.expectAccountsExist(req.DebitAccount, req.CreditAccount)
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.DebitAccount == req.DebitAccount &&
			v.CreditAccount == req.CreditAccount &&
			v.Amount.Equal(req.Amount) &&
			v.Narration == req.Narration &&
			v.CreatedBy == creatorUserID &&
			strings.HasPrefix(v.VoucherNumber, "V-")
	})).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.Equal(domain.VoucherPayment, voucher.Type)
	suite.True(strings.HasPrefix(voucher.VoucherNumber, "V-"))
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_SameAccountRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.CreditAccount = req.DebitAccount

	voucher, err := suite.service.CreateVoucher(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_NonPositiveAmountRejected() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-500)} {
		req := suite.validRequest()
		req.Amount = amount

		voucher, err := suite.service.CreateVoucher(ctx, req, uuid.NewString())

		suite.Require().Error(err)
		suite.Nil(voucher)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_UnknownTypeRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Type = domain.VoucherType("Transfer")

	voucher, err := suite.service.CreateVoucher(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_MissingAccountRejected() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockAccountRepo.On("FindAccountByName", mock.Anything, req.DebitAccount).
		Return(nil, apperrors.ErrNotFound).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID:     voucherID,
		VoucherNumber: "V-1700000000000",
		Date:          time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		Type:          domain.VoucherJournal,
		DebitAccount:  domain.AccountExpenses,
		CreditAccount: domain.AccountCashBank,
		Amount:        decimal.NewFromInt(20000),
	}

	req := dto.UpdateVoucherRequest{
		Date:          dto.NewDate(time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)),
		Type:          domain.VoucherReceipt,
		Narration:     "Customer deposit",
		DebitAccount:  domain.AccountCashBank,
		CreditAccount: domain.AccountReceivable,
		Amount:        decimal.NewFromInt(45000),
	}

	suite.expectAccountsExist(req.DebitAccount, req.CreditAccount)
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.VoucherID == voucherID &&
			v.VoucherNumber == "V-1700000000000" && // number survives edits
			v.Type == domain.VoucherReceipt &&
			v.Amount.Equal(req.Amount) &&
			v.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	voucher, err := suite.service.UpdateVoucher(ctx, voucherID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.Equal("V-1700000000000", voucher.VoucherNumber)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestDeleteVoucher_NotFound() {
	ctx := context.Background()
	voucherID := uuid.NewString()

	suite.mockVoucherRepo.On("DeleteVoucher", ctx, voucherID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteVoucher(ctx, voucherID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
