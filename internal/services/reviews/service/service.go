// Package service implements the bounded store and ingest operations for reviews
package service

import (
	"context"

	"github.com/google/uuid"

	"arc/internal/core/canon"
	"arc/internal/modkit/repokit"
	perr "arc/internal/platform/errors"
	"arc/internal/platform/logger"
	"arc/internal/services/reviews/domain"
	"arc/internal/services/reviews/repo"
)

// Service owns the bounded store, the journal, and the optional archive mirror
type Service struct {
	buf     *Buffer
	norm    *canon.Normalizer
	journal domain.JournalPort

	// optional Postgres mirror; nil when the archive is disabled
	pg     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
}

// Options configures the reviews service
type Options struct {
	Capacity int
	Journal  domain.JournalPort
	PG       repokit.TxRunner
	Binder   repokit.Binder[repo.Storage]
}

// New constructs the reviews service
func New(opt Options) *Service {
	if opt.Journal == nil {
		panic("reviews service requires a journal")
	}
	return &Service{
		buf:     NewBuffer(opt.Capacity),
		norm:    canon.New(),
		journal: opt.Journal,
		pg:      opt.PG,
		binder:  opt.Binder,
	}
}

// Buffer exposes the store for test orchestration
func (s *Service) Buffer() *Buffer { return s.buf }

// Ingest normalizes the batch, journals it durably, mirrors it into the
// optional archive, then updates the bounded store.
// Journal failures propagate: silent loss there is unacceptable.
// Archive failures are logged and do not fail the call, the journal is
// the durability contract and the archive is a mirror
func (s *Service) Ingest(ctx context.Context, raws []canon.Raw) (domain.IngestOutput, error) {
	if len(raws) == 0 {
		return domain.IngestOutput{StoreSize: s.buf.Count()}, nil
	}

	batch := s.norm.NormalizeBatch(raws)
	batchID := uuid.NewString()

	if err := s.journal.Append(ctx, batchID, batch); err != nil {
		return domain.IngestOutput{}, perr.Wrap(err, perr.ErrorCodeJournal, "ingest journal append")
	}

	if s.pg != nil && s.binder != nil {
		if err := s.binder.Bind(s.pg).InsertBatch(ctx, batchID, batch); err != nil {
			logger.C(ctx).Warn().Err(err).
				Str("batch_id", batchID).
				Bool("retryable", perr.Retryable(err)).
				Msg("archive mirror insert failed")
		}
	}

	size := s.buf.Ingest(batch)

	logger.C(ctx).Info().
		Str("batch_id", batchID).
		Int("accepted", len(batch)).
		Int("store_size", size).
		Msg("reviews ingested")

	return domain.IngestOutput{
		BatchID:   batchID,
		Accepted:  len(batch),
		StoreSize: size,
	}, nil
}

// Reset clears the store, truncates the journal, and empties the archive mirror
func (s *Service) Reset(ctx context.Context) (domain.ResetOutput, error) {
	s.buf.Reset()

	if err := s.journal.Truncate(); err != nil {
		return domain.ResetOutput{}, perr.Wrap(err, perr.ErrorCodeJournal, "reset journal truncate")
	}

	if s.pg != nil && s.binder != nil {
		if err := s.binder.Bind(s.pg).TruncateAll(ctx); err != nil {
			logger.C(ctx).Warn().Err(err).
				Bool("retryable", perr.Retryable(err)).
				Msg("archive mirror truncate failed")
		}
	}

	return domain.ResetOutput{Cleared: true}, nil
}

// Peek returns up to n earliest buffered reviews
func (s *Service) Peek(_ context.Context, n int) (domain.PeekOutput, error) {
	return domain.PeekOutput{Reviews: s.buf.Peek(n)}, nil
}

// Count returns the current store size
func (s *Service) Count(_ context.Context) (domain.CountOutput, error) {
	return domain.CountOutput{Count: s.buf.Count()}, nil
}

var (
	_ domain.IngesterPort  = (*Service)(nil)
	_ domain.InspectorPort = (*Service)(nil)
)
