package stats

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/noobping/ing2qif/internal/model"
	"github.com/noobping/ing2qif/internal/qif"
)

// Summary aggregates the amounts of a statement by direction and QIF
// category.
type Summary struct {
	Count      int
	Credits    decimal.Decimal
	Debits     decimal.Decimal
	ByCategory map[model.Category]decimal.Decimal
}

// Net returns credits minus debits.
func (s Summary) Net() decimal.Decimal {
	return s.Credits.Sub(s.Debits)
}

// ParseAmount converts an ING amount string such as "1.234,56" to a
// decimal. Unlike the QIF pass-through this is real numeric parsing:
// thousands separators are stripped and the comma becomes the decimal
// point.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(raw, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return d, nil
}

// Summarize totals the records. Unmapped kinds land in the
// model.CategoryNone bucket.
func Summarize(records []model.RawRecord, cols model.Columns) (Summary, error) {
	sum := Summary{ByCategory: make(map[model.Category]decimal.Decimal)}
	for i, rec := range records {
		amount, err := ParseAmount(rec.Get(cols.Amount))
		if err != nil {
			return Summary{}, fmt.Errorf("row %d: %w", i+1, err)
		}

		if rec.Get(cols.Direction) == model.DirectionCredit {
			sum.Credits = sum.Credits.Add(amount)
		} else {
			sum.Debits = sum.Debits.Add(amount)
		}

		cat := qif.Classify(model.TransactionKind(rec.Get(cols.Kind)))
		sum.ByCategory[cat] = sum.ByCategory[cat].Add(amount)
		sum.Count++
	}
	return sum, nil
}
