package qif

import (
	"strings"

	"github.com/noobping/ing2qif/internal/model"
)

// Entry is one QIF bank-statement record, ready to serialize. Entries
// are built once from a raw row and never modified.
type Entry struct {
	Date     string
	Amount   string // signed, decimal separator normalized
	Category model.Category
	Memo     string
}

// NewEntry builds an Entry from one raw statement row. The only error
// is a malformed narrative; everything else falls back silently.
func NewEntry(rec model.RawRecord, cols model.Columns) (Entry, error) {
	kind := model.TransactionKind(rec.Get(cols.Kind))
	category := Classify(kind)

	memo, err := extractMemo(kind, rec.Get(cols.Narrative), rec.Get(cols.Counterparty))
	if err != nil {
		return Entry{}, err
	}
	if category != model.CategoryNone {
		memo = string(category) + " " + memo
	} else {
		memo = strings.TrimSpace(memo)
	}

	amount := model.NormalizeAmount(rec.Get(cols.Amount))
	return Entry{
		Date:     rec.Get(cols.Date),
		Amount:   FormatSignedAmount(rec.Get(cols.Direction), amount),
		Category: category,
		Memo:     memo,
	}, nil
}

// FormatSignedAmount prefixes a normalized amount with its sign: "+"
// for credits ("Bij"), "-" for everything else, unrecognized direction
// values included.
func FormatSignedAmount(direction, amount string) string {
	if direction == model.DirectionCredit {
		return "+" + amount
	}
	return "-" + amount
}

// Serialize renders the entry as a QIF block: date, amount, category
// when present, memo, and the "^" terminator.
func (e Entry) Serialize() string {
	lines := make([]string, 0, 5)
	lines = append(lines, "D"+e.Date, "T"+e.Amount)
	if e.Category != model.CategoryNone {
		lines = append(lines, "N"+string(e.Category))
	}
	lines = append(lines, "M"+e.Memo, "^")
	return strings.Join(lines, "\n")
}
