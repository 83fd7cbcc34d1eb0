package dto

import (
	"strconv"
	"time"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/reconciliation"
)

// WorkingRowResponse is one position of the working copy
type WorkingRowResponse struct {
	Position int            `json:"position"`
	Selected bool           `json:"selected"`
	Edited   bool           `json:"edited"`
	Record   RecordResponse `json:"record"`
}

// SnapshotResponse is the editor view after an action
type SnapshotResponse struct {
	SessionID       string               `json:"sessionId"`
	Scope           string               `json:"scope"`
	Rows            []WorkingRowResponse `json:"rows"`
	Selected        []uint64             `json:"selected"`
	LastDigest      string               `json:"lastDigest,omitempty"`
	HasUnsavedEdits bool                 `json:"hasUnsavedEdits"`
	LoadedAt        time.Time            `json:"loadedAt"`
}

// FromSnapshot maps a desk snapshot
func FromSnapshot(s reconciliation.Snapshot) SnapshotResponse {
	rows := make([]WorkingRowResponse, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, WorkingRowResponse{
			Position: r.Position,
			Selected: r.Selected,
			Edited:   r.Edited,
			Record:   FromRecord(r.Record),
		})
	}

	selected := s.Selected
	if selected == nil {
		selected = []uint64{}
	}

	return SnapshotResponse{
		SessionID:       s.SessionID,
		Scope:           s.Scope,
		Rows:            rows,
		Selected:        selected,
		LastDigest:      s.LastDigest,
		HasUnsavedEdits: s.HasUnsavedEdits,
		LoadedAt:        s.LoadedAt,
	}
}

// ScopeRequest restricts the working copy to one cardholder
type ScopeRequest struct {
	Cardholder string `json:"cardholder" binding:"max=255"`
}

// DeltaRequest carries edits keyed by working copy position
type DeltaRequest struct {
	Deltas map[string]reconciliation.RowDelta `json:"deltas" binding:"required"`
}

// ToDeltaSet converts string keys to positions. ok is false on a non-numeric key.
func (r DeltaRequest) ToDeltaSet() (reconciliation.DeltaSet, string, bool) {
	set := make(reconciliation.DeltaSet, len(r.Deltas))
	for key, delta := range r.Deltas {
		pos, err := strconv.Atoi(key)
		if err != nil {
			return nil, key, false
		}
		set[pos] = delta
	}
	return set, "", true
}

// DeltaResponse reports whether a delta set was applied
type DeltaResponse struct {
	Applied bool `json:"applied"`
}

// SaveResponse reports how many rows were written
type SaveResponse struct {
	Saved int `json:"saved"`
}

// BookResponse lists the rows moved to BOOKED
type BookResponse struct {
	Count  int      `json:"count"`
	Booked []uint64 `json:"booked"`
}
