package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/dto"
)

// AnalyticsHandler serves spend summaries over the whole store
type AnalyticsHandler struct {
	reports usecase.ReportUseCase
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(reports usecase.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{reports: reports}
}

// Monthly handles GET /analytics/monthly
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	months, err := h.reports.MonthlySpend(c.Request.Context(), c.Query("cardholder"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMonthlySpend(months))
}

// TopDescriptions handles GET /analytics/top-descriptions
func (h *AnalyticsHandler) TopDescriptions(c *gin.Context) {
	limit, err := queryInt(c, "limit", report.DefaultTopLimit)
	if err != nil {
		fail(c, err)
		return
	}

	items, err := h.reports.TopDescriptions(c.Request.Context(), c.Query("cardholder"), limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDescriptionSpend(items))
}
