package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/extract"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/config"
)

// minimalPDF builds a structurally valid PDF with empty pages
func minimalPDF(pages int) []byte {
	var buf bytes.Buffer
	offsets := []int{}

	buf.WriteString("%PDF-1.4\n")
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	kids := ""
	for i := 0; i < pages; i++ {
		kids += fmt.Sprintf("%d 0 R ", i+3)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, pages))
	for i := 0; i < pages; i++ {
		writeObj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

func newTestExtractor(run RunFunc) *Extractor {
	e := NewExtractor(config.ExtractorConfig{PdfToTextPath: "pdftotext"}, logger.NewNoopLogger())
	if run != nil {
		e.WithRunner(run)
	}
	return e
}

func TestSplitPages(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single page", "a\nb", []string{"a\nb"}},
		{"trailing separator", "one\ftwo\f", []string{"one", "two"}},
		{"blank middle page kept", "one\f\fthree", []string{"one", "", "three"}},
		{"crlf normalized", "a\r\nb\f", []string{"a\nb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPages(tt.in))
		})
	}
}

func TestExtract_PlainText(t *testing.T) {
	e := newTestExtractor(nil)

	content := "NOMBRE DEL TITULAR JUAN PEREZ\n15/03/24 SUPERMERCADO $ 12.990 $ 12.990\fTOTAL\n"
	pages, err := e.Extract(context.Background(), extract.Document{
		DisplayName: "march.txt",
		Content:     []byte(content),
	})

	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Contains(t, pages[0], "SUPERMERCADO")
}

func TestExtract_EmptyDocument(t *testing.T) {
	_, err := newTestExtractor(nil).Extract(context.Background(), extract.Document{DisplayName: "empty.pdf"})
	assert.ErrorIs(t, err, errs.ErrUnreadableDocument)
}

func TestExtract_UnsupportedType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	_, err := newTestExtractor(nil).Extract(context.Background(), extract.Document{
		DisplayName: "scan.png",
		Content:     png,
	})
	assert.ErrorIs(t, err, errs.ErrUnreadableDocument)
}

func TestExtract_BlankText(t *testing.T) {
	_, err := newTestExtractor(nil).Extract(context.Background(), extract.Document{
		DisplayName: "blank.txt",
		Content:     []byte("   \n\f  \n"),
	})
	assert.ErrorIs(t, err, errs.ErrUnreadableDocument)
}

func TestExtract_PDF(t *testing.T) {
	var gotName string
	var gotArgs []string
	run := func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte("page one\fpage two\f"), nil
	}

	pages, err := newTestExtractor(run).Extract(context.Background(), extract.Document{
		DisplayName: "march.pdf",
		Content:     minimalPDF(2),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"page one", "page two"}, pages)
	assert.Equal(t, "pdftotext", gotName)
	require.NotEmpty(t, gotArgs)
	assert.Equal(t, "-layout", gotArgs[0])
	assert.Equal(t, "-", gotArgs[len(gotArgs)-1])
}

func TestExtract_PDFWithoutText(t *testing.T) {
	run := func(context.Context, string, ...string) ([]byte, error) {
		return []byte("\f\f"), nil
	}

	_, err := newTestExtractor(run).Extract(context.Background(), extract.Document{
		DisplayName: "scanned.pdf",
		Content:     minimalPDF(2),
	})
	assert.ErrorIs(t, err, errs.ErrUnreadableDocument)
}

func TestExtract_PdftotextFailure(t *testing.T) {
	run := func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exec: \"pdftotext\": executable file not found in $PATH")
	}

	_, err := newTestExtractor(run).Extract(context.Background(), extract.Document{
		DisplayName: "march.pdf",
		Content:     minimalPDF(1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdftotext failed")
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := newTestExtractor(nil).Extract(context.Background(), extract.Document{
		DisplayName: "broken.pdf",
		Content:     []byte("%PDF-1.4\nthis is not really a pdf"),
	})
	assert.ErrorIs(t, err, errs.ErrUnreadableDocument)
}
