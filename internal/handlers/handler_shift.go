package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	portssvc "github.com/kasozib/bar_pos_backend/internal/core/ports/services"
	"github.com/kasozib/bar_pos_backend/internal/dto"
	"github.com/kasozib/bar_pos_backend/internal/middleware"
)

type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

func newShiftHandler(ss portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{shiftService: ss}
}

func registerShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.openShift)
		shifts.GET("", h.listShifts)
		shifts.POST("/:id/close", h.closeShift)
	}
}

func (h *shiftHandler) openShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	shift, err := h.shiftService.OpenShift(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to open shift", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open shift"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(*shift))
}

func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	var req dto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), shiftID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close shift", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close shift"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(*shift))
}

func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shifts, err := h.shiftService.ListShifts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list shifts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponses(shifts))
}
