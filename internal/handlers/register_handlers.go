package handlers

import (
	"log/slog"

	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/fintrackhq/finance_tracker_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerHomeRoutes(r, cfg, services.Diagnostics)

	api := r.Group("/api", middleware.RateLimit(newRateLimiter(cfg)))
	registerAccountRoutes(api, services.Account)
	registerCategoryRoutes(api, services.Category)
	registerTransactionRoutes(api, services.Transaction)
	registerBudgetRoutes(api, services.Budget)
	registerSummaryRoutes(api, services.Summary)
}

// newRateLimiter builds the per-IP limiter for the /api group from the
// configured "count-period" rate (e.g. "100-M").
func newRateLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT value, falling back to 100-M", slog.String("value", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	return limiter.New(memory.NewStore(), rate)
}
