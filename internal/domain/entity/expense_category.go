package entity

import (
	"strings"
)

// DefaultExpenseCategories is used when no categories are configured
var DefaultExpenseCategories = []string{
	"Alimentacion", "Alojamiento", "Combustible", "Estacionamiento", "Kilometraje",
	"Legales", "Marketing", "Materiales", "Otro", "Pasajes Aereos", "Peajes",
	"Telefonos", "Transporte", "Viaticos", "Personal RD", "Personal CA",
	"Personal RM", "BCI Paga TC",
}

// CategorySet is the fixed enumeration of valid expense categories
type CategorySet struct {
	ordered []string
	index   map[string]struct{}
}

// NewCategorySet builds a set from configured values, dropping blanks and duplicates
func NewCategorySet(values []string) CategorySet {
	set := CategorySet{index: make(map[string]struct{}, len(values))}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, seen := set.index[v]; seen {
			continue
		}
		set.index[v] = struct{}{}
		set.ordered = append(set.ordered, v)
	}
	return set
}

// Contains reports whether value is a valid non-empty category
func (c CategorySet) Contains(value string) bool {
	_, ok := c.index[value]
	return ok
}

// Allows reports whether value may be assigned. The empty string clears a category.
func (c CategorySet) Allows(value string) bool {
	return value == "" || c.Contains(value)
}

// Values returns the categories in configured order
func (c CategorySet) Values() []string {
	out := make([]string, len(c.ordered))
	copy(out, c.ordered)
	return out
}
