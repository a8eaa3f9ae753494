package model

// Columns maps the converter's logical statement fields to source
// column names.
type Columns struct {
	Date         string
	Amount       string
	Direction    string
	Kind         string
	Narrative    string
	Counterparty string
}

// DirectionCredit is the direction value ("Af Bij" column) marking
// money coming in. Every other value is treated as a debit.
const DirectionCredit = "Bij"

// DefaultColumns returns the column names of an ING CSV export.
func DefaultColumns() Columns {
	return Columns{
		Date:         "Datum",
		Amount:       "Bedrag (EUR)",
		Direction:    "Af Bij",
		Kind:         "MutatieSoort",
		Narrative:    "Mededelingen",
		Counterparty: "Naam / Omschrijving",
	}
}
