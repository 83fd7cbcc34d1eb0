package reconciliation

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

// rowEdit holds unsaved working values for one record
type rowEdit struct {
	Reconciled      *bool
	ExpenseCategory *string
}

// Session is the editor's in-memory state between store reads.
// Nothing in it survives a process restart.
type Session struct {
	ID string

	scope      string
	working    []entity.TransactionRecord
	dirty      bool
	edits      map[uint64]rowEdit
	selected   map[uint64]bool
	lastDigest string
	// layout is the row order lastDigest's positions referred to
	layout   []uint64
	ingested []entity.TransactionRecord
	loadedAt time.Time
}

// NewSession creates an empty session that loads from the store on first use
func NewSession() *Session {
	return &Session{
		ID:       uuid.NewString(),
		dirty:    true,
		edits:    make(map[uint64]rowEdit),
		selected: make(map[uint64]bool),
	}
}

// Scope returns the cardholder filter, empty for all records
func (s *Session) Scope() string {
	return s.scope
}

// Dirty reports whether the working copy must be rebuilt from the store
func (s *Session) Dirty() bool {
	return s.dirty || s.working == nil
}

// MarkDirty schedules a reload on the next read
func (s *Session) MarkDirty() {
	s.dirty = true
}

// LastDigest returns the digest of the last applied delta set
func (s *Session) LastDigest() string {
	return s.lastDigest
}

// LoadedAt returns when the working copy was last rebuilt
func (s *Session) LoadedAt() time.Time {
	return s.loadedAt
}

// SelectedIDs returns the row identities currently selected for booking
func (s *Session) SelectedIDs() []uint64 {
	ids := make([]uint64, 0, len(s.selected))
	for id, on := range s.selected {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// HasUnsavedEdits reports whether any working value differs from the last store read
func (s *Session) HasUnsavedEdits() bool {
	return len(s.edits) > 0
}

// Ingested returns the records inserted during this session
func (s *Session) Ingested() []entity.TransactionRecord {
	out := make([]entity.TransactionRecord, len(s.ingested))
	copy(out, s.ingested)
	return out
}

// discard drops every edit, selection and the delta digest
func (s *Session) discard() {
	s.working = nil
	s.dirty = true
	s.edits = make(map[uint64]rowEdit)
	s.selected = make(map[uint64]bool)
	s.lastDigest = ""
}

// clear returns the session to its initial state, keeping its id
func (s *Session) clear() {
	s.discard()
	s.scope = ""
	s.layout = nil
	s.ingested = nil
}

// relayout records the row order of a rebuilt working copy. Deltas are
// positional, so a digest taken against another order no longer identifies
// the same edits and is dropped.
func (s *Session) relayout(working []entity.TransactionRecord) {
	same := len(working) == len(s.layout)
	ids := make([]uint64, len(working))
	for i, r := range working {
		ids[i] = r.ID
		if same && s.layout[i] != r.ID {
			same = false
		}
	}
	if !same {
		s.lastDigest = ""
	}
	s.layout = ids
}
