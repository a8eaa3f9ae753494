package qif

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noobping/ing2qif/internal/model"
)

// numberedRecords returns n rows whose narrative carries the row number.
func numberedRecords(n int) []model.RawRecord {
	records := make([]model.RawRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, record(
			"Acceptgiro", fmt.Sprintf("row %d", i), "", "Af", "1,00"))
	}
	return records
}

func TestBatchSerialize(t *testing.T) {
	batch := &Batch{}
	batch.Add(Entry{Date: "20250103", Amount: "-1.00", Memo: "first"})
	batch.Add(Entry{Date: "20250104", Amount: "+2.00", Memo: "second"})

	got := batch.Serialize()
	want := strings.Join([]string{
		"!Type:Bank",
		"D20250103", "T-1.00", "Mfirst", "^",
		"D20250104", "T+2.00", "Msecond", "^",
	}, "\n")
	assert.Equal(t, want, got)
	assert.False(t, strings.HasSuffix(got, "\n"), "no trailing separator beyond the joins")
}

func TestBatchSerialize_Empty(t *testing.T) {
	batch := &Batch{}
	assert.Equal(t, "!Type:Bank", batch.Serialize())
}

func TestBuild_All(t *testing.T) {
	batch, err := Build(numberedRecords(5), model.DefaultColumns(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 5, batch.Len())
}

func TestBuild_Range(t *testing.T) {
	batch, err := Build(numberedRecords(5), model.DefaultColumns(), Options{Start: 3, Number: 2})
	require.NoError(t, err)

	require.Equal(t, 2, batch.Len())
	assert.Equal(t, "row 3", batch.Entries()[0].Memo)
	assert.Equal(t, "row 4", batch.Entries()[1].Memo)
}

func TestBuild_StartBeyondInput(t *testing.T) {
	batch, err := Build(numberedRecords(3), model.DefaultColumns(), Options{Start: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Len())
}

func TestBuild_NumberLargerThanInput(t *testing.T) {
	batch, err := Build(numberedRecords(3), model.DefaultColumns(), Options{Start: 2, Number: 99})
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Len())
	assert.Equal(t, "row 2", batch.Entries()[0].Memo)
}

func TestBuild_MalformedAbortsBatch(t *testing.T) {
	records := numberedRecords(3)
	records[1] = record("Incasso", "SEPA Incasso no markers", "", "Af", "1,00")

	batch, err := Build(records, model.DefaultColumns(), Options{})
	require.Error(t, err)
	assert.Nil(t, batch, "no partial output on malformed narrative")
	assert.Contains(t, err.Error(), "row 2")

	var merr *MalformedNarrativeError
	assert.ErrorAs(t, err, &merr)
}

func TestBuild_Idempotent(t *testing.T) {
	records := numberedRecords(4)
	first, err := Build(records, model.DefaultColumns(), Options{})
	require.NoError(t, err)
	second, err := Build(records, model.DefaultColumns(), Options{})
	require.NoError(t, err)
	assert.Equal(t, first.Serialize(), second.Serialize())
}
