package service

import (
	"context"
	"errors"
	"testing"

	"arc/internal/core/canon"
	perr "arc/internal/platform/errors"
)

type fakeJournal struct {
	appendErr   error
	truncateErr error

	appends   int
	truncates int
	lastBatch string
	lastLen   int
}

func (f *fakeJournal) Append(_ context.Context, batchID string, reviews []canon.Review) error {
	f.appends++
	f.lastBatch = batchID
	f.lastLen = len(reviews)
	return f.appendErr
}

func (f *fakeJournal) Truncate() error {
	f.truncates++
	return f.truncateErr
}

func raws(n int) []canon.Raw {
	out := make([]canon.Raw, n)
	for i := range out {
		out[i] = canon.Raw{
			"review_key":  string(rune('a' + i)),
			"review_body": "interesting product, works as described",
			"author_name": "John Smith",
		}
	}
	return out
}

func TestServiceIngestJournalsThenBuffers(t *testing.T) {
	t.Parallel()

	j := &fakeJournal{}
	s := New(Options{Capacity: 10, Journal: j})

	out, err := s.Ingest(context.Background(), raws(3))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if out.Accepted != 3 || out.StoreSize != 3 {
		t.Fatalf("out = %+v", out)
	}
	if out.BatchID == "" || out.BatchID != j.lastBatch {
		t.Fatalf("batch id not stamped through journal: %q vs %q", out.BatchID, j.lastBatch)
	}
	if j.appends != 1 || j.lastLen != 3 {
		t.Fatalf("journal appends=%d len=%d", j.appends, j.lastLen)
	}
}

func TestServiceIngestEmptyBatchSkipsJournal(t *testing.T) {
	t.Parallel()

	j := &fakeJournal{}
	s := New(Options{Capacity: 10, Journal: j})
	s.Ingest(context.Background(), raws(2))

	out, err := s.Ingest(context.Background(), nil)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if out.Accepted != 0 || out.StoreSize != 2 || out.BatchID != "" {
		t.Fatalf("out = %+v", out)
	}
	if j.appends != 1 {
		t.Fatalf("empty batch must not touch the journal: %d", j.appends)
	}
}

func TestServiceIngestJournalFailurePropagates(t *testing.T) {
	t.Parallel()

	j := &fakeJournal{appendErr: errors.New("disk full")}
	s := New(Options{Capacity: 10, Journal: j})

	_, err := s.Ingest(context.Background(), raws(2))
	if err == nil {
		t.Fatal("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeJournal) {
		t.Fatalf("want journal code, got %v", err)
	}
	// the store must not accept what the journal rejected
	if s.buf.Count() != 0 {
		t.Fatalf("buffer updated despite journal failure: %d", s.buf.Count())
	}
}

func TestServiceResetClearsBufferAndJournal(t *testing.T) {
	t.Parallel()

	j := &fakeJournal{}
	s := New(Options{Capacity: 10, Journal: j})
	s.Ingest(context.Background(), raws(4))

	out, err := s.Reset(context.Background())
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !out.Cleared {
		t.Fatal("cleared flag")
	}
	if j.truncates != 1 {
		t.Fatalf("truncates = %d", j.truncates)
	}
	if s.buf.Count() != 0 {
		t.Fatalf("buffer not cleared: %d", s.buf.Count())
	}
}

func TestServiceResetTruncateFailurePropagates(t *testing.T) {
	t.Parallel()

	j := &fakeJournal{truncateErr: errors.New("permission denied")}
	s := New(Options{Capacity: 10, Journal: j})

	_, err := s.Reset(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeJournal) {
		t.Fatalf("want journal code, got %v", err)
	}
}

func TestServicePeekAndCount(t *testing.T) {
	t.Parallel()

	s := New(Options{Capacity: 10, Journal: &fakeJournal{}})
	s.Ingest(context.Background(), raws(5))

	peek, err := s.Peek(context.Background(), 2)
	if err != nil || len(peek.Reviews) != 2 {
		t.Fatalf("peek: %v %d", err, len(peek.Reviews))
	}
	count, err := s.Count(context.Background())
	if err != nil || count.Count != 5 {
		t.Fatalf("count: %v %d", err, count.Count)
	}
}

func TestServiceNormalizesBeforeStoring(t *testing.T) {
	t.Parallel()

	s := New(Options{Capacity: 10, Journal: &fakeJournal{}})
	s.Ingest(context.Background(), []canon.Raw{{
		"id":     "r-1",
		"review": "  spaced   out ​body  ",
		"stars":  "5",
	}})

	got, _ := s.Peek(context.Background(), 1)
	r := got.Reviews[0]
	if r.Key != "r-1" {
		t.Fatalf("alias id: %q", r.Key)
	}
	if r.Body != "spaced out body" {
		t.Fatalf("sanitize: %q", r.Body)
	}
	if r.Rating != 5 {
		t.Fatalf("rating coercion: %v", r.Rating)
	}
	if r.AuthorName != "Unknown" {
		t.Fatalf("author default: %q", r.AuthorName)
	}
}

func TestServiceRequiresJournal(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(Options{Capacity: 10})
}
