package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/kasozib/bar_pos_backend/internal/core/ports/services"
	"github.com/kasozib/bar_pos_backend/internal/middleware"
	"github.com/kasozib/bar_pos_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services.User)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, services.Account)
	registerAccountingRoutes(v1, services.Accounting)
	registerSaleRoutes(v1, services.Sale)
	registerExpenseRoutes(v1, services.Expense)
	registerVoucherRoutes(v1, services.Voucher)
	registerInventoryRoutes(v1, services.Inventory)
	registerStaffRoutes(v1, services.User)
	registerShiftRoutes(v1, services.Shift)
}
