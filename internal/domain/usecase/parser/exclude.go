package parser

import (
	"strings"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

// ParseExcludeTerms splits a comma separated list into lowercase terms
func ParseExcludeTerms(raw string) []string {
	var terms []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// FilterExcluded drops records whose description contains any of the terms,
// compared case-insensitively. It returns the kept records and the number dropped.
func FilterExcluded(records []*entity.TransactionRecord, terms []string) ([]*entity.TransactionRecord, int) {
	if len(terms) == 0 {
		return records, 0
	}

	kept := make([]*entity.TransactionRecord, 0, len(records))
	for _, r := range records {
		if containsAny(strings.ToLower(r.Description), terms) {
			continue
		}
		kept = append(kept, r)
	}
	return kept, len(records) - len(kept)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
