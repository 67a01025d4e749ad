package handlers

import (
	"net/http"

	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// homeHandler serves the liveness and store diagnostic endpoints.
type homeHandler struct {
	cfg         *config.Config
	diagnostics portssvc.DiagnosticsSvc
}

func newHomeHandler(cfg *config.Config, diagnostics portssvc.DiagnosticsSvc) *homeHandler {
	return &homeHandler{cfg: cfg, diagnostics: diagnostics}
}

// registerHomeRoutes registers the root liveness and /test routes.
func registerHomeRoutes(r *gin.Engine, cfg *config.Config, diagnostics portssvc.DiagnosticsSvc) {
	h := newHomeHandler(cfg, diagnostics)
	r.GET("/", h.getHome)
	r.GET("/test", h.testStore)
}

// getHome reports process liveness.
func (h *homeHandler) getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Finance Tracker API is running"})
}

// testStore reports store reachability and collection enumeration. It
// never fails the request; degraded states show up as status fields.
func (h *homeHandler) testStore(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     "not set",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.cfg.DatabaseURL != "" {
		response["database_url"] = "set"
	}
	if h.cfg.DatabaseName != "" {
		response["database_name"] = "set"
	}

	if err := h.diagnostics.Ping(c.Request.Context()); err != nil {
		response["database"] = "error: " + truncateError(err, 80)
		c.JSON(http.StatusOK, response)
		return
	}

	collections, err := h.diagnostics.ListCollections(c.Request.Context())
	if err != nil {
		response["database"] = "connected but error: " + truncateError(err, 80)
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "connected and working"
	response["connection_status"] = "connected"
	response["collections"] = collections
	c.JSON(http.StatusOK, response)
}

func truncateError(err error, limit int) string {
	msg := err.Error()
	if len(msg) > limit {
		return msg[:limit]
	}
	return msg
}
