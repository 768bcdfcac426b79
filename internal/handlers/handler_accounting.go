package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kasozib/bar_pos_backend/internal/core/ports/services"
	"github.com/kasozib/bar_pos_backend/internal/middleware"
)

// accountingHandler serves the derived ledgers and financial reports.
type accountingHandler struct {
	accountingService portssvc.AccountingSvcFacade
}

func newAccountingHandler(as portssvc.AccountingSvcFacade) *accountingHandler {
	return &accountingHandler{accountingService: as}
}

func registerAccountingRoutes(rg *gin.RouterGroup, accountingService portssvc.AccountingSvcFacade) {
	h := newAccountingHandler(accountingService)

	accounting := rg.Group("/accounting")
	{
		accounting.GET("/ledgers", h.getLedgers)
		accounting.GET("/daybook", h.getDayBook)
		accounting.GET("/trial-balance", h.getTrialBalance)
		accounting.GET("/profit-and-loss", h.getProfitAndLoss)
		accounting.GET("/balance-sheet", h.getBalanceSheet)
	}
}

func (h *accountingHandler) getLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgers, err := h.accountingService.Ledgers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive ledgers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive ledgers"})
		return
	}

	c.JSON(http.StatusOK, ledgers)
}

func (h *accountingHandler) getDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.accountingService.DayBook(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive day book", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive day book"})
		return
	}

	c.JSON(http.StatusOK, txns)
}

func (h *accountingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tb, err := h.accountingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive trial balance"})
		return
	}

	c.JSON(http.StatusOK, tb)
}

func (h *accountingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pl, err := h.accountingService.ProfitAndLoss(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive profit and loss"})
		return
	}

	c.JSON(http.StatusOK, pl)
}

func (h *accountingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bs, err := h.accountingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive balance sheet"})
		return
	}

	c.JSON(http.StatusOK, bs)
}
