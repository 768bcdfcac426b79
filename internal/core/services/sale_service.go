package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
	"github.com/kasozib/bar_pos_backend/internal/dto"
	"github.com/kasozib/bar_pos_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// SaleService handles checkout and settlement. Totals, cost and profit are
// always recomputed from the line items; client-supplied figures are ignored.
type SaleService struct {
	saleRepo      portsrepo.SaleRepository
	inventoryRepo portsrepo.InventoryRepository
}

func NewSaleService(saleRepo portsrepo.SaleRepository, inventoryRepo portsrepo.InventoryRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo, inventoryRepo: inventoryRepo}
}

func (s *SaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, cashierUserID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if req.PaymentMethod == domain.PaymentCredit && req.CustomerInfo == nil {
		return nil, fmt.Errorf("%w: credit sales require customer info", apperrors.ErrValidation)
	}

	total := decimal.Zero
	totalCost := decimal.Zero
	items := make([]domain.SaleItem, len(req.Items))
	for i, line := range req.Items {
		qty := decimal.NewFromInt(int64(line.Quantity))
		total = total.Add(line.UnitPrice.Mul(qty))
		totalCost = totalCost.Add(line.UnitCost.Mul(qty))
		items[i] = domain.SaleItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			ItemID:    line.ItemID,
		}
	}

	receipt := req.ReceiptNumber
	if receipt == "" {
		receipt = fmt.Sprintf("R-%d", time.Now().UnixMilli())
	}

	status := domain.SalePaid
	if req.PaymentMethod == domain.PaymentCredit {
		status = domain.SaleUnpaid
	}

	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		ReceiptNumber: receipt,
		Items:         items,
		Total:         total,
		TotalCost:     totalCost,
		Profit:        total.Sub(totalCost),
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		CashierName:   req.CashierName,
		CreatedAt:     time.Now(),
	}
	if req.CustomerInfo != nil {
		sale.CustomerInfo = &domain.CustomerInfo{
			Name:    req.CustomerInfo.Name,
			Contact: req.CustomerInfo.Contact,
		}
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		logger.Error("Failed to save sale", slog.String("error", err.Error()), slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	// Decrement stock for lines linked to inventory items. A failed decrement
	// does not void the sale; the till keeps ringing and stock is reconciled
	// at count time.
	for _, line := range req.Items {
		if line.ItemID == "" {
			continue
		}
		if _, err := s.inventoryRepo.AdjustStock(ctx, line.ItemID, -line.Quantity, cashierUserID); err != nil {
			logger.Warn("Failed to decrement stock for sold item",
				slog.String("item_id", line.ItemID),
				slog.Int("quantity", line.Quantity),
				slog.String("error", err.Error()))
		}
	}

	logger.Info("Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("receipt", sale.ReceiptNumber),
		slog.String("total", sale.Total.String()),
		slog.String("payment_method", string(sale.PaymentMethod)))
	return &sale, nil
}

func (s *SaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find sale", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		}
		return nil, err
	}
	return sale, nil
}

func (s *SaleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

// MarkSalePaid settles a credit sale. The ledger already carries the revenue
// posting against Accounts Receivable, so settlement only flips the status;
// it never posts again.
func (s *SaleService) MarkSalePaid(ctx context.Context, saleID string, updaterUserID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.saleRepo.MarkSalePaid(ctx, saleID, updaterUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to mark sale paid", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		}
		return nil, err
	}

	logger.Info("Sale marked paid", slog.String("sale_id", saleID))
	return s.saleRepo.FindSaleByID(ctx, saleID)
}
