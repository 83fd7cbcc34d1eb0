package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/extract"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/config"
)

const (
	pageSeparator  = "\f"
	defaultTimeout = 30 * time.Second
)

// RunFunc executes an external command and returns its stdout
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Extractor recovers per-page text from PDF and plain text uploads
type Extractor struct {
	pdftotextPath string
	timeout       time.Duration
	pdfConfig     *model.Configuration
	run           RunFunc
	logger        coreport.Logger
}

// NewExtractor creates an extractor backed by the pdftotext binary
func NewExtractor(conf config.ExtractorConfig, logger coreport.Logger) *Extractor {
	pdfConfig := model.NewDefaultConfiguration()
	pdfConfig.ValidationMode = model.ValidationRelaxed

	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	path := conf.PdfToTextPath
	if path == "" {
		path = "pdftotext"
	}

	return &Extractor{
		pdftotextPath: path,
		timeout:       timeout,
		pdfConfig:     pdfConfig,
		run:           runCommand,
		logger:        logger,
	}
}

// WithRunner replaces the command runner, mainly for tests
func (e *Extractor) WithRunner(run RunFunc) *Extractor {
	e.run = run
	return e
}

var _ extract.TextExtractor = (*Extractor)(nil)

// Extract returns the text of every page in order
func (e *Extractor) Extract(ctx context.Context, doc extract.Document) ([]string, error) {
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", errs.ErrUnreadableDocument, doc.DisplayName)
	}

	mime := mimetype.Detect(doc.Content)

	e.logger.Debug("Extracting document text", map[string]any{
		"document":  doc.DisplayName,
		"mime_type": mime.String(),
		"size":      len(doc.Content),
	})

	switch {
	case mime.Is("application/pdf"):
		return e.extractPDF(ctx, doc)
	case mime.Is("text/plain"):
		return nonBlank(SplitPages(string(doc.Content)), doc.DisplayName)
	default:
		return nil, fmt.Errorf("%w: %s has unsupported type %s", errs.ErrUnreadableDocument, doc.DisplayName, mime.String())
	}
}

func (e *Extractor) extractPDF(ctx context.Context, doc extract.Document) ([]string, error) {
	pageCount, err := api.PageCount(bytes.NewReader(doc.Content), e.pdfConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid PDF: %v", errs.ErrUnreadableDocument, doc.DisplayName, err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: %s has no pages", errs.ErrUnreadableDocument, doc.DisplayName)
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil {
			e.logger.Warn("Failed to remove temp file", map[string]any{
				"path":  tmp.Name(),
				"error": rmErr.Error(),
			})
		}
	}()

	if _, err := tmp.Write(doc.Content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := e.run(runCtx, e.pdftotextPath, "-layout", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		e.logger.Error("pdftotext failed", map[string]any{
			"document": doc.DisplayName,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("pdftotext failed for %s: %w", doc.DisplayName, err)
	}

	pages := SplitPages(string(out))
	if len(pages) != pageCount {
		e.logger.Warn("Extracted page count differs from document", map[string]any{
			"document":  doc.DisplayName,
			"expected":  pageCount,
			"extracted": len(pages),
		})
	}

	return nonBlank(pages, doc.DisplayName)
}

// SplitPages splits extracted text on form feeds. The empty page after a
// trailing separator is dropped.
func SplitPages(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	pages := strings.Split(text, pageSeparator)
	if n := len(pages); n > 1 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return pages
}

// nonBlank rejects documents with no text at all, such as scanned images
func nonBlank(pages []string, name string) ([]string, error) {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return pages, nil
		}
	}
	return nil, fmt.Errorf("%w: no text in %s", errs.ErrUnreadableDocument, name)
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
