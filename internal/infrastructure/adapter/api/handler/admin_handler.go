package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/dto"
)

// AdminHandler runs store maintenance
type AdminHandler struct {
	maintenance usecase.MaintenanceUseCase
	desk        usecase.ReconciliationUseCase
	logger      coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(maintenance usecase.MaintenanceUseCase, desk usecase.ReconciliationUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		maintenance: maintenance,
		desk:        desk,
		logger:      logger,
	}
}

// Purge handles POST /admin/purge
func (h *AdminHandler) Purge(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, invalidRequest("invalid purge request: %v", err))
		return
	}

	result, err := h.maintenance.Purge(c.Request.Context(), req.Confirm)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.desk.Reset(c.Request.Context()); err != nil {
		h.logger.Error("Failed to reset editing session", map[string]any{
			"error": err.Error(),
		})
	}
	c.JSON(http.StatusOK, result)
}

// NormalizeDates handles POST /admin/normalize-dates
func (h *AdminHandler) NormalizeDates(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, invalidRequest("invalid normalization request: %v", err))
		return
	}

	result, err := h.maintenance.NormalizeDates(c.Request.Context(), req.Confirm)
	if err != nil {
		fail(c, err)
		return
	}

	h.invalidateSession(c)
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) invalidateSession(c *gin.Context) {
	if err := h.desk.Invalidate(c.Request.Context()); err != nil {
		h.logger.Error("Failed to invalidate editing session", map[string]any{
			"error": err.Error(),
		})
	}
}
