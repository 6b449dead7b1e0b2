// Package division holds the closed, numerically-coded vocabularies used
// across the domain: lifecycle statuses, balloon categories, contribution
// sources and similar. Each category maps a stable int16 code to a display
// label; the tables are built once at init and never mutated.
package division

import "sort"

// meta carries the display metadata attached to a single division value.
type meta struct {
	displayName  string
	isDefault    bool
	displayOrder int
}

// table is the immutable per-category registry mapping codes to metadata.
type table[T ~int16] struct {
	entries map[T]meta
	sorted  []T
	def     T
}

func newTable[T ~int16](entries map[T]meta) table[T] {
	sorted := make([]T, 0, len(entries))
	var def T
	for code, m := range entries {
		sorted = append(sorted, code)
		if m.isDefault {
			def = code
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := entries[sorted[i]], entries[sorted[j]]
		if a.displayOrder != b.displayOrder {
			return a.displayOrder < b.displayOrder
		}

		return sorted[i] < sorted[j]
	})

	return table[T]{entries: entries, sorted: sorted, def: def}
}

func (t table[T]) displayName(code T) string {
	if m, ok := t.entries[code]; ok {
		return m.displayName
	}

	return ""
}

func (t table[T]) isValid(code T) bool {
	_, ok := t.entries[code]

	return ok
}

func (t table[T]) fromValue(value int16) (T, bool) {
	code := T(value)
	_, ok := t.entries[code]

	return code, ok
}

// list returns all codes sorted by display order. The returned slice is a
// copy; callers may reorder it freely.
func (t table[T]) list() []T {
	out := make([]T, len(t.sorted))
	copy(out, t.sorted)

	return out
}
