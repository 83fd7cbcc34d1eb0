package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/dto"
)

// RecordHandler serves stored records and their exports
type RecordHandler struct {
	reports usecase.ReportUseCase
	desk    usecase.ReconciliationUseCase
	logger  coreport.Logger
}

// NewRecordHandler creates a new record handler instance
func NewRecordHandler(reports usecase.ReportUseCase, desk usecase.ReconciliationUseCase, logger coreport.Logger) *RecordHandler {
	return &RecordHandler{
		reports: reports,
		desk:    desk,
		logger:  logger,
	}
}

// List handles GET /transactions
func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.reports.AllRecords(c.Request.Context(), c.Query("cardholder"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRecords(records))
}

// Booked handles GET /transactions/booked
func (h *RecordHandler) Booked(c *gin.Context) {
	records, err := h.desk.Booked(c.Request.Context(), c.Query("cardholder"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRecords(records))
}

// Export handles GET /transactions/export
func (h *RecordHandler) Export(c *gin.Context) {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		fail(c, err)
		return
	}

	records, err := h.reports.AllRecords(c.Request.Context(), c.Query("cardholder"))
	if err != nil {
		fail(c, err)
		return
	}

	h.writeExport(c, format, "transactions", records)
}

// SessionExport handles GET /session/export
func (h *RecordHandler) SessionExport(c *gin.Context) {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		fail(c, err)
		return
	}

	records, err := h.desk.SessionRecords(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	h.writeExport(c, format, "session_transactions", records)
}

// writeExport encodes into a buffer first so a failure can still be reported
func (h *RecordHandler) writeExport(c *gin.Context, format report.Format, base string, records []entity.TransactionRecord) {
	var buf bytes.Buffer
	if err := report.Write(&buf, format, records); err != nil {
		fail(c, err)
		return
	}

	h.logger.Debug("Export written", map[string]any{
		"format":  string(format),
		"records": len(records),
		"bytes":   buf.Len(),
	})

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.FileName(base)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
