package repository

import (
	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/model"
)

func recordToModel(r *entity.TransactionRecord) model.TransactionRecord {
	return model.TransactionRecord{
		ID:               r.ID,
		OperationDate:    r.OperationDate,
		Description:      r.Description,
		OperationAmount:  r.OperationAmount,
		TotalAmount:      r.TotalAmount,
		SourceDocumentID: r.SourceDocumentID,
		Reconciled:       r.Reconciled,
		ExpenseCategory:  r.ExpenseCategory,
		Booked:           r.Booked,
		CreatedAt:        r.CreatedAt,
	}
}

func recordToEntity(m model.TransactionRecord) entity.TransactionRecord {
	return entity.TransactionRecord{
		ID:               m.ID,
		OperationDate:    m.OperationDate,
		Description:      m.Description,
		OperationAmount:  m.OperationAmount,
		TotalAmount:      m.TotalAmount,
		SourceDocumentID: m.SourceDocumentID,
		Reconciled:       m.Reconciled,
		ExpenseCategory:  m.ExpenseCategory,
		Booked:           m.Booked,
		CreatedAt:        m.CreatedAt,
	}
}

func recordsToEntities(models []model.TransactionRecord) []entity.TransactionRecord {
	out := make([]entity.TransactionRecord, 0, len(models))
	for _, m := range models {
		out = append(out, recordToEntity(m))
	}
	return out
}

func documentToEntity(m model.ProcessedDocument) entity.ProcessedDocument {
	return entity.ProcessedDocument{
		Fingerprint: m.Fingerprint,
		DisplayName: m.DisplayName,
		ProcessedAt: m.ProcessedAt,
	}
}
