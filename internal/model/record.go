package model

import "strings"

// RawRecord is one source row, keyed by the CSV header column names.
// Records are built once by the importer and never mutated.
type RawRecord map[string]string

// Get returns the value for a column, or "" when the column is absent.
func (r RawRecord) Get(name string) string {
	return r[name]
}

// Lookup returns the value for a column and whether it was present.
func (r RawRecord) Lookup(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// NormalizeAmount converts the locale decimal separator to a period.
// The value is otherwise passed through verbatim, so applying it twice
// equals applying it once.
func NormalizeAmount(raw string) string {
	return strings.ReplaceAll(raw, ",", ".")
}
