package qif

import (
	"fmt"
	"strings"

	"github.com/noobping/ing2qif/internal/model"
)

// Narrative sub-field markers used by the extraction strategies. ING
// embeds these ad hoc in the free-text "Mededelingen" field.
const (
	markerName        = "Naam: "
	markerReference   = "Kenmerk: "
	markerDescription = "Omschrijving: "
	markerIBAN        = "IBAN: "
)

// sepaIncassoPrefix triggers the direct-debit strategy.
const sepaIncassoPrefix = "SEPA Incasso"

// atmPrefixes are counterparty prefixes kept whole by the ATM strategy.
var atmPrefixes = []string{"ING>", "ING BANK>", "OPL. CHIPKNIP"}

// MalformedNarrativeError reports a narrative that matched a strategy
// precondition but is missing a required marker. It aborts the whole
// batch; both raw fields are carried for diagnostics.
type MalformedNarrativeError struct {
	Kind         model.TransactionKind
	Marker       string
	Narrative    string
	Counterparty string
}

func (e *MalformedNarrativeError) Error() string {
	return fmt.Sprintf("malformed %s narrative: missing %q in %q (counterparty %q)",
		e.Kind, e.Marker, e.Narrative, e.Counterparty)
}

// extractMemo derives the memo text for one statement line. Each
// specialized strategy either produces a memo, declines (the default
// all-the-text strategy then applies), or reports a malformed
// narrative, which is the only fatal condition in the core.
func extractMemo(kind model.TransactionKind, narrative, counterparty string) (string, error) {
	var (
		memo string
		ok   bool
		err  error
	)

	switch kind {
	case model.KindDiversen:
		memo, ok = truncateRunes(narrative, 64), true
	case model.KindGeldautomaat, model.KindBetaalautomaat:
		memo, ok = atmMemo(narrative, counterparty), true
	case model.KindIncasso:
		memo, ok, err = incassoMemo(narrative, counterparty)
	case model.KindInternetbankieren, model.KindOverschrijving:
		memo, ok = bankTransferMemo(narrative)
	case model.KindVerzamelbetaling:
		memo, ok, err = batchPaymentMemo(narrative, counterparty)
	}
	if err != nil {
		return "", err
	}
	if !ok {
		memo = defaultMemo(narrative, counterparty)
	}
	return memo, nil
}

// atmMemo keeps the counterparty text whole for ING's own terminals
// and Chipknip top-ups; anything else gets a capped slice of the
// narrative.
func atmMemo(narrative, counterparty string) string {
	for _, p := range atmPrefixes {
		if strings.HasPrefix(counterparty, p) {
			return counterparty
		}
	}
	return truncateRunes(narrative, 32)
}

// incassoMemo handles SEPA direct debits. It applies only when either
// field starts with "SEPA Incasso"; the memo is the text between
// "Naam: " and "Kenmerk: ". A matching record missing either marker
// is malformed.
func incassoMemo(narrative, counterparty string) (string, bool, error) {
	if !strings.HasPrefix(counterparty, sepaIncassoPrefix) &&
		!strings.HasPrefix(narrative, sepaIncassoPrefix) {
		return "", false, nil
	}
	memo, ok, missing := between(narrative, markerName, markerReference)
	if ok {
		return memo, true, nil
	}
	if missing == "" {
		// Markers present but out of order; let the default handle it.
		return "", false, nil
	}
	return "", false, &MalformedNarrativeError{
		Kind:         model.KindIncasso,
		Marker:       missing,
		Narrative:    narrative,
		Counterparty: counterparty,
	}
}

// bankTransferMemo extracts the counterparty name from online-banking
// and wire-transfer narratives. The name runs from "Naam: " up to
// "Omschrijving: " when present, otherwise up to "IBAN: ". Declines
// when the markers are absent.
func bankTransferMemo(narrative string) (string, bool) {
	end := markerDescription
	if !strings.Contains(narrative, end) {
		end = markerIBAN
	}
	memo, ok, _ := between(narrative, markerName, end)
	return memo, ok
}

// batchPaymentMemo handles collective payments. It applies only when
// "Naam: " occurs in the narrative; a matching record without
// "Kenmerk: " is malformed, same policy as incassoMemo.
func batchPaymentMemo(narrative, counterparty string) (string, bool, error) {
	if !strings.Contains(narrative, markerName) {
		return "", false, nil
	}
	memo, ok, missing := between(narrative, markerName, markerReference)
	if ok {
		return memo, true, nil
	}
	if missing == "" {
		return "", false, nil
	}
	return "", false, &MalformedNarrativeError{
		Kind:         model.KindVerzamelbetaling,
		Marker:       missing,
		Narrative:    narrative,
		Counterparty: counterparty,
	}
}

// defaultMemo includes all the text when no specialized strategy
// applies. Absent fields arrive as empty strings.
func defaultMemo(narrative, counterparty string) string {
	return narrative + " " + counterparty
}

// between returns the text strictly between the end of start and the
// beginning of end within s. The bool reports whether both markers
// were found in order; missing names the first absent marker, or is
// empty when both exist but end precedes start.
func between(s, start, end string) (memo string, ok bool, missing string) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", false, start
	}
	from := i + len(start)
	j := strings.Index(s, end)
	if j < 0 {
		return "", false, end
	}
	if j < from {
		return "", false, ""
	}
	return s[from:j], true, ""
}

// truncateRunes caps s at n runes without splitting a multi-byte
// character.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
