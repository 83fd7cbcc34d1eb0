package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/dto"
)

// ReconciliationHandler exposes the editing session
type ReconciliationHandler struct {
	desk   usecase.ReconciliationUseCase
	logger coreport.Logger
}

// NewReconciliationHandler creates a new reconciliation handler instance
func NewReconciliationHandler(desk usecase.ReconciliationUseCase, logger coreport.Logger) *ReconciliationHandler {
	return &ReconciliationHandler{desk: desk, logger: logger}
}

// Categories handles GET /categories
func (h *ReconciliationHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: h.desk.Categories()})
}

// View handles GET /reconciliation
func (h *ReconciliationHandler) View(c *gin.Context) {
	h.respondSnapshot(c, h.desk.View)
}

// Refresh handles POST /reconciliation/refresh
func (h *ReconciliationHandler) Refresh(c *gin.Context) {
	h.respondSnapshot(c, h.desk.Refresh)
}

// Reset handles POST /reconciliation/reset
func (h *ReconciliationHandler) Reset(c *gin.Context) {
	h.respondSnapshot(c, h.desk.ResetEdits)
}

// SetScope handles PUT /reconciliation/scope
func (h *ReconciliationHandler) SetScope(c *gin.Context) {
	var req dto.ScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, invalidRequest("invalid scope request: %v", err))
		return
	}

	snapshot, err := h.desk.SetScope(c.Request.Context(), req.Cardholder)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSnapshot(snapshot))
}

// Cardholders handles GET /reconciliation/cardholders
func (h *ReconciliationHandler) Cardholders(c *gin.Context) {
	names, err := h.desk.Cardholders(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, dto.CardholdersResponse{Cardholders: names})
}

// ApplyDeltas handles POST /reconciliation/deltas
func (h *ReconciliationHandler) ApplyDeltas(c *gin.Context) {
	var req dto.DeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, invalidRequest("invalid delta request: %v", err))
		return
	}

	deltas, badKey, ok := req.ToDeltaSet()
	if !ok {
		fail(c, invalidRequest("delta key %q is not a position", badKey))
		return
	}

	applied, err := h.desk.ApplyDeltas(c.Request.Context(), deltas)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeltaResponse{Applied: applied})
}

// Save handles POST /reconciliation/save
func (h *ReconciliationHandler) Save(c *gin.Context) {
	saved, err := h.desk.Save(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SaveResponse{Saved: saved})
}

// Book handles POST /reconciliation/book
func (h *ReconciliationHandler) Book(c *gin.Context) {
	result, err := h.desk.Book(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	booked := result.Booked
	if booked == nil {
		booked = []uint64{}
	}
	c.JSON(http.StatusOK, dto.BookResponse{Count: len(booked), Booked: booked})
}

func (h *ReconciliationHandler) respondSnapshot(c *gin.Context, action func(ctx context.Context) (reconciliation.Snapshot, error)) {
	snapshot, err := action(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSnapshot(snapshot))
}
