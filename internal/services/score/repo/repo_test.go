package repo

import (
	"context"
	"testing"

	"arc/internal/core/canon"
	"arc/internal/core/scoring"
	"arc/internal/platform/store"
)

type fakeCH struct {
	table string
	rows  [][]any
	calls int
}

func (f *fakeCH) Insert(_ context.Context, table string, data any) error {
	f.calls++
	f.table = table
	f.rows = data.([][]any)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeCH) Close() error                                             { return nil }

func TestInsertResultsRowShape(t *testing.T) {
	t.Parallel()

	ch := &fakeCH{}
	sink := NewCH(ch)

	reviews := []canon.Review{
		{Key: "r-1", Verified: true, TextLen: 42},
		{Key: "r-2", TextLen: 7},
	}
	results := []scoring.Result{
		{Key: "r-1", Total: 80, Label: "Feels Genuine"},
		{Key: "r-2", Total: 20, Label: "Likely Fake"},
	}

	err := sink.InsertResults(context.Background(), "batch-7", reviews, []float64{0.8, 0.3}, results)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if ch.table != "score_events" {
		t.Fatalf("table = %q", ch.table)
	}
	if len(ch.rows) != 2 {
		t.Fatalf("rows = %d", len(ch.rows))
	}
	row := ch.rows[0]
	if row[1] != "batch-7" || row[2] != "r-1" || row[3] != int32(80) {
		t.Fatalf("row = %v", row)
	}
	if row[5] != 0.8 || row[6] != true || row[7] != int32(42) {
		t.Fatalf("row tail = %v", row)
	}
}

func TestInsertResultsShortProbVectorDegradesToNeutral(t *testing.T) {
	t.Parallel()

	ch := &fakeCH{}
	sink := NewCH(ch)

	reviews := []canon.Review{{Key: "a"}, {Key: "b"}}
	results := []scoring.Result{{Key: "a", Total: 50}, {Key: "b", Total: 50}}

	err := sink.InsertResults(context.Background(), "batch-1", reviews, []float64{0.9}, results)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if ch.rows[0][5] != 0.9 {
		t.Fatalf("rows[0] prob = %v", ch.rows[0][5])
	}
	if ch.rows[1][5] != 0.5 {
		t.Fatalf("rows[1] prob = %v want neutral", ch.rows[1][5])
	}
}

func TestInsertResultsEmptyIsNoop(t *testing.T) {
	t.Parallel()

	ch := &fakeCH{}
	if err := NewCH(ch).InsertResults(context.Background(), "b", nil, nil, nil); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if ch.calls != 0 {
		t.Fatalf("empty batch hit clickhouse: %d calls", ch.calls)
	}
}
