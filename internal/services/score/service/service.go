// Package service composes normalization, the model adapter, and the
// score pipeline into the batch scoring operation
package service

import (
	"context"

	"github.com/google/uuid"

	"arc/internal/adapters/model"
	"arc/internal/core/canon"
	"arc/internal/core/scoring"
	"arc/internal/platform/logger"
	"arc/internal/services/score/domain"
	"arc/internal/services/score/repo"
)

// Service scores batches of raw reviews
type Service struct {
	norm  *canon.Normalizer
	model model.Port

	// optional ClickHouse sink; nil when analytics is disabled
	sink repo.EventSink
}

// Options configures the score service
type Options struct {
	Model model.Port
	Sink  repo.EventSink
}

// New constructs the score service
func New(opt Options) *Service {
	m := opt.Model
	if m == nil {
		m = model.NewStatic(model.NeutralProb)
	}
	return &Service{
		norm:  canon.New(),
		model: m,
		sink:  opt.Sink,
	}
}

// ScoreBatch normalizes the batch, fetches model probabilities in one
// round trip, and composes a result per review in input order.
// Sink failures are logged and never fail the call
func (s *Service) ScoreBatch(ctx context.Context, raws []canon.Raw) (domain.ScoreOutput, error) {
	if len(raws) == 0 {
		return domain.ScoreOutput{Results: []scoring.Result{}}, nil
	}

	batch := s.norm.NormalizeBatch(raws)

	texts := make([]string, len(batch))
	for i, r := range batch {
		texts[i] = canon.Text(r)
	}
	probs := s.model.Probabilities(ctx, texts)

	results := scoring.ComposeBatch(batch, probs)

	if s.sink != nil {
		batchID := uuid.NewString()
		if err := s.sink.InsertResults(ctx, batchID, batch, probs, results); err != nil {
			logger.C(ctx).Warn().Err(err).Str("batch_id", batchID).Msg("score event sink insert failed")
		}
	}

	logger.C(ctx).Info().Int("scored", len(results)).Msg("batch scored")

	return domain.ScoreOutput{Results: results}, nil
}

var _ domain.ScorerPort = (*Service)(nil)
