package qif

import (
	"fmt"
	"strings"

	"github.com/noobping/ing2qif/internal/model"
)

// Header is the QIF account-type header for bank statements.
const Header = "!Type:Bank"

// Batch is an ordered, append-only collection of entries.
type Batch struct {
	entries []Entry
}

// Add appends an entry to the batch.
func (b *Batch) Add(e Entry) {
	b.entries = append(b.entries, e)
}

// Len returns the number of entries in the batch.
func (b *Batch) Len() int { return len(b.entries) }

// Entries returns the entries in insertion order.
func (b *Batch) Entries() []Entry { return b.entries }

// Serialize renders the whole batch under the !Type:Bank header.
func (b *Batch) Serialize() string {
	data := make([]string, 0, len(b.entries)+1)
	data = append(data, Header)
	for _, e := range b.entries {
		data = append(data, e.Serialize())
	}
	return strings.Join(data, "\n")
}

// Options selects which source rows become entries. Rows are numbered
// from 1 in source order.
type Options struct {
	Start  int // first row to include; 0 or 1 means the beginning
	Number int // maximum entries to produce; 0 means unbounded
}

// Build converts raw rows into a batch, honoring the row range. A
// malformed narrative aborts the whole batch; no partial output is
// returned.
func Build(records []model.RawRecord, cols model.Columns, opts Options) (*Batch, error) {
	batch := &Batch{}
	for i, rec := range records {
		row := i + 1
		if row < opts.Start {
			continue
		}
		if opts.Number > 0 && batch.Len() >= opts.Number {
			break
		}
		entry, err := NewEntry(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		batch.Add(entry)
	}
	return batch, nil
}
