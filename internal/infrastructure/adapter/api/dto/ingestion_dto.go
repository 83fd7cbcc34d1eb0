package dto

import (
	domainerr "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/ingestion"
)

// DocumentResultResponse reports the outcome for one uploaded document
type DocumentResultResponse struct {
	DisplayName      string `json:"displayName"`
	Fingerprint      string `json:"fingerprint,omitempty"`
	Status           string `json:"status"`
	SourceDocumentID string `json:"sourceDocumentId,omitempty"`
	Inserted         int    `json:"inserted"`
	Excluded         int    `json:"excluded"`
	Message          string `json:"message"`
	ErrorCode        int    `json:"errorCode,omitempty"`
}

// BatchResponse reports the outcome of an upload batch
type BatchResponse struct {
	BatchID   string                   `json:"batchId"`
	Inserted  int                      `json:"inserted"`
	Documents []DocumentResultResponse `json:"documents"`
}

// FromBatchResult maps an ingestion batch result
func FromBatchResult(b ingestion.BatchResult) BatchResponse {
	docs := make([]DocumentResultResponse, 0, len(b.Documents))
	for _, d := range b.Documents {
		item := DocumentResultResponse{
			DisplayName:      d.DisplayName,
			Fingerprint:      d.Fingerprint,
			Status:           string(d.Status),
			SourceDocumentID: d.SourceDocumentID,
			Inserted:         d.Inserted,
			Excluded:         d.Excluded,
			Message:          d.Message,
		}
		if d.Err != nil {
			item.ErrorCode = domainerr.ErrorCode(d.Err)
		}
		docs = append(docs, item)
	}

	return BatchResponse{
		BatchID:   b.BatchID,
		Inserted:  b.Inserted(),
		Documents: docs,
	}
}
