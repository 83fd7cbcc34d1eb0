package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/extract"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/ingestion"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/dto"
)

// DocumentHandler accepts statement uploads
type DocumentHandler struct {
	ingestion      usecase.IngestionUseCase
	desk           usecase.ReconciliationUseCase
	maxUploadBytes int64
	logger         coreport.Logger
}

// NewDocumentHandler creates a new document handler instance
func NewDocumentHandler(
	ingestion usecase.IngestionUseCase,
	desk usecase.ReconciliationUseCase,
	maxUploadBytes int64,
	logger coreport.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		ingestion:      ingestion,
		desk:           desk,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload handles POST /documents
func (h *DocumentHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, invalidRequest("expected a multipart form: %v", err))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		fail(c, invalidRequest("no files uploaded"))
		return
	}

	docs := make([]extract.Document, 0, len(files))
	for _, fh := range files {
		if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
			fail(c, invalidRequest("%s exceeds the %d byte upload limit", fh.Filename, h.maxUploadBytes))
			return
		}
		content, err := readUpload(fh)
		if err != nil {
			fail(c, invalidRequest("failed to read %s: %v", fh.Filename, err))
			return
		}
		docs = append(docs, extract.Document{DisplayName: fh.Filename, Content: content})
	}

	opts := ingestion.Options{}
	if values, ok := form.Value["exclude"]; ok {
		// an explicit empty field disables the default terms
		opts.ExcludeTerms = splitTerms(values)
		if opts.ExcludeTerms == nil {
			opts.ExcludeTerms = []string{}
		}
	}

	batch := h.ingestion.IngestBatch(c.Request.Context(), docs, opts)

	if records := batch.Records(); len(records) > 0 {
		if err := h.desk.NoteIngested(c.Request.Context(), records); err != nil {
			h.logger.Error("Failed to note ingested records in session", map[string]any{
				"batch_id": batch.BatchID,
				"error":    err.Error(),
			})
		}
	}

	c.JSON(http.StatusOK, dto.FromBatchResult(batch))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return content, nil
}
