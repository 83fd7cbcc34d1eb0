package ingestion

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/persistence"
)

// Admission is issued for a document whose content has not been ingested yet
type Admission struct {
	Fingerprint string
	DisplayName string
}

// DedupGuard rejects documents whose content fingerprint is already registered.
// The filename plays no part in the decision.
type DedupGuard struct {
	documentRepo persistence.ProcessedDocumentRepository
}

// NewDedupGuard creates a new DedupGuard
func NewDedupGuard(documentRepo persistence.ProcessedDocumentRepository) *DedupGuard {
	return &DedupGuard{
		documentRepo: documentRepo,
	}
}

// Admit fingerprints the content and checks it against the processed set.
// Registration is left to the caller so that it happens only after a successful insert.
func (g *DedupGuard) Admit(ctx context.Context, content []byte, displayName string) (*Admission, error) {
	fingerprint := Fingerprint(content)

	exists, err := g.documentRepo.ExistsByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to check processed documents: %w", err)
	}

	if exists {
		return nil, errs.NewDuplicateDocumentError(fingerprint, displayName)
	}

	return &Admission{
		Fingerprint: fingerprint,
		DisplayName: displayName,
	}, nil
}
