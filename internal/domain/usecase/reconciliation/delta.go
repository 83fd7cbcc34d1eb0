package reconciliation

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// RowDelta is a per-field change for one working copy position. Nil fields are untouched.
type RowDelta struct {
	Reconciled      *bool   `json:"reconciled,omitempty"`
	ExpenseCategory *string `json:"expenseCategory,omitempty"`
	Selected        *bool   `json:"selected,omitempty"`
}

// IsEmpty reports whether the delta changes nothing
func (d RowDelta) IsEmpty() bool {
	return d.Reconciled == nil && d.ExpenseCategory == nil && d.Selected == nil
}

// DeltaSet maps working copy positions to their changes
type DeltaSet map[int]RowDelta

type positionedDelta struct {
	Position int      `json:"p"`
	Delta    RowDelta `json:"d"`
}

// Positions returns the positions in ascending order
func (ds DeltaSet) Positions() []int {
	positions := make([]int, 0, len(ds))
	for p := range ds {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	return positions
}

// Digest returns a SHA-256 over the canonical encoding of the set.
// Equal sets always produce equal digests regardless of map iteration order.
func (ds DeltaSet) Digest() (string, error) {
	canonical := make([]positionedDelta, 0, len(ds))
	for _, p := range ds.Positions() {
		canonical = append(canonical, positionedDelta{Position: p, Delta: ds[p]})
	}

	encoded, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
