package domain

import (
	"context"

	"arc/internal/core/canon"
)

// IngesterPort mutates the bounded store and its durable collaborators
type IngesterPort interface {
	Ingest(ctx context.Context, raws []canon.Raw) (IngestOutput, error)
	Reset(ctx context.Context) (ResetOutput, error)
}

// InspectorPort reads the store for diagnostics
type InspectorPort interface {
	Peek(ctx context.Context, n int) (PeekOutput, error)
	Count(ctx context.Context) (CountOutput, error)
}

// JournalPort is the append-only durability collaborator
type JournalPort interface {
	Append(ctx context.Context, batchID string, reviews []canon.Review) error
	Truncate() error
}
