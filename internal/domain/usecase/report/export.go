package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
)

// Format is an export file format
type Format string

// Supported export formats
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet written by XLSX exports
const SheetName = "Transactions"

// Columns is the stable export field order. Row identity is never exported.
var Columns = []string{
	"operation_date",
	"description",
	"operation_amount",
	"total_amount",
	"expense_category",
	"reconciled",
	"booked",
	"source_document_id",
}

// ParseFormat validates a requested format, defaulting to CSV when empty
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidExportFormat, value)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName returns a download name with the format's extension
func (f Format) FileName(base string) string {
	return base + "." + string(f)
}

// Write encodes records in the given format
func Write(w io.Writer, format Format, records []entity.TransactionRecord) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatXLSX:
		return WriteXLSX(w, records)
	default:
		return fmt.Errorf("%w: %q", errs.ErrInvalidExportFormat, format)
	}
}

// WriteCSV writes a header row followed by one row per record
func WriteCSV(w io.Writer, records []entity.TransactionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(csvRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(r entity.TransactionRecord) []string {
	return []string{
		r.OperationDate,
		r.Description,
		amountText(r.OperationAmount),
		amountText(r.TotalAmount),
		r.ExpenseCategory,
		strconv.FormatBool(r.Reconciled),
		strconv.FormatBool(r.Booked),
		r.SourceDocumentID,
	}
}

func amountText(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// WriteXLSX writes a single worksheet with numeric amount cells
func WriteXLSX(w io.Writer, records []entity.TransactionRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, bold); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.OperationDate,
			r.Description,
			amountCell(r.OperationAmount),
			amountCell(r.TotalAmount),
			r.ExpenseCategory,
			r.Reconciled,
			r.Booked,
			r.SourceDocumentID,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func amountCell(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
