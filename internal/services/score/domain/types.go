// Package domain holds types and ports for the score service
package domain

import (
	"context"

	"arc/internal/core/canon"
	"arc/internal/core/scoring"
)

// ScoreInput is a batch of raw review payloads to score in one call.
// An empty batch is not an error, it yields an empty result set
type ScoreInput struct {
	Reviews []canon.Raw `json:"reviews" validate:"max=500"`
}

// ScoreOutput carries one result per input review, input order preserved
type ScoreOutput struct {
	Results []scoring.Result `json:"results"`
}

// ScorerPort scores batches of raw reviews
type ScorerPort interface {
	ScoreBatch(ctx context.Context, raws []canon.Raw) (ScoreOutput, error)
}
