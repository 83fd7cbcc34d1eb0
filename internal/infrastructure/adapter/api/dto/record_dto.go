package dto

import (
	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

// RecordResponse is one stored transaction record
type RecordResponse struct {
	ID               uint64 `json:"id"`
	OperationDate    string `json:"operationDate"`
	Description      string `json:"description"`
	OperationAmount  *int64 `json:"operationAmount"`
	TotalAmount      *int64 `json:"totalAmount"`
	DisplayAmount    string `json:"displayAmount"`
	SourceDocumentID string `json:"sourceDocumentId"`
	Cardholder       string `json:"cardholder,omitempty"`
	Reconciled       bool   `json:"reconciled"`
	ExpenseCategory  string `json:"expenseCategory"`
	Booked           bool   `json:"booked"`
	Status           string `json:"status"`
}

// RecordListResponse wraps a list of records
type RecordListResponse struct {
	Count   int              `json:"count"`
	Records []RecordResponse `json:"records"`
}

// FromRecord maps a domain record to its API shape
func FromRecord(r entity.TransactionRecord) RecordResponse {
	return RecordResponse{
		ID:               r.ID,
		OperationDate:    r.OperationDate,
		Description:      r.Description,
		OperationAmount:  r.OperationAmount,
		TotalAmount:      r.TotalAmount,
		DisplayAmount:    entity.FormatAmountPtr(r.OperationAmount),
		SourceDocumentID: r.SourceDocumentID,
		Cardholder:       r.Cardholder(),
		Reconciled:       r.Reconciled,
		ExpenseCategory:  r.ExpenseCategory,
		Booked:           r.Booked,
		Status:           string(r.Status()),
	}
}

// FromRecords maps a record list
func FromRecords(records []entity.TransactionRecord) RecordListResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromRecord(r))
	}
	return RecordListResponse{Count: len(out), Records: out}
}

// CategoriesResponse lists the configured expense categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// CardholdersResponse lists cardholders with pending records
type CardholdersResponse struct {
	Cardholders []string `json:"cardholders"`
}
