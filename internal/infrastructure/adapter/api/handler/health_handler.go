package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/database"
)

// DatabaseStatus is the part of the database manager the health check reads
type DatabaseStatus interface {
	Ping(ctx context.Context) error
	Driver() string
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler reports liveness and database reachability
type HealthHandler struct {
	db     DatabaseStatus
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseStatus, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Driver:   h.db.Driver(),
		Pool:     h.db.PoolMetrics(),
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health check database ping failed", map[string]any{
			"error": err.Error(),
		})
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
