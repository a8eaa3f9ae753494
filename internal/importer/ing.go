package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/noobping/ing2qif/internal/model"
)

// INGParser parses ING bank semicolon-delimited CSV exports.
type INGParser struct {
	// Comma overrides the field delimiter. Zero means ';'.
	Comma rune
}

// Format returns the parser name.
func (p *INGParser) Format() string { return "ing" }

// Parse reads an ING CSV export and returns one RawRecord per data
// row, keyed by the header column names. Rows shorter than the header
// leave the trailing columns absent; extra cells are dropped.
func (p *INGParser) Parse(r io.Reader) ([]model.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	if p.Comma != 0 {
		cr.Comma = p.Comma
	}
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ING CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []model.RawRecord
	for _, row := range rows[1:] {
		rec := make(model.RawRecord, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	return records, nil
}
