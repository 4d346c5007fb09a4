// Package repo provides the ClickHouse event sink for scoring
package repo

import (
	"context"
	"time"

	"arc/internal/core/canon"
	"arc/internal/core/scoring"
	"arc/internal/platform/store"
)

// EventSink records scored batches for offline analysis
type EventSink interface {
	InsertResults(ctx context.Context, batchID string, reviews []canon.Review, probs []float64, results []scoring.Result) error
}

// NewCH builds a sink over the shared ClickHouse seam
func NewCH(ch store.Clickhouse) EventSink { return &chSink{ch: ch} }

type chSink struct{ ch store.Clickhouse }

// InsertResults appends one event row per scored review.
// reviews, probs and results are parallel slices from the same batch
func (s *chSink) InsertResults(ctx context.Context, batchID string, reviews []canon.Review, probs []float64, results []scoring.Result) error {
	if len(results) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(results))
	for i, res := range results {
		// a short vector degrades to neutral, same as score composition
		prob := 0.5
		if i < len(probs) {
			prob = probs[i]
		}
		rows = append(rows, []any{
			now,
			batchID,
			res.Key,
			int32(res.Total),
			res.Label,
			prob,
			reviews[i].Verified,
			int32(reviews[i].TextLen),
		})
	}
	return s.ch.Insert(ctx, "score_events", rows)
}
