// Package domain holds types and ports for the reviews service
package domain

import (
	"arc/internal/core/canon"
)

// DefaultCapacity is the bounded store size when none is configured
const DefaultCapacity = 10

// IngestInput is a batch of raw review payloads from the capture extension.
// An empty batch is not an error, it is a no-op that reports the store size
type IngestInput struct {
	Reviews []canon.Raw `json:"reviews" validate:"max=500"`
}

// IngestOutput reports what an ingest call did
type IngestOutput struct {
	BatchID   string `json:"batch_id"`
	Accepted  int    `json:"accepted"`
	StoreSize int    `json:"store_size"`
}

// ResetOutput confirms a reset
type ResetOutput struct {
	Cleared bool `json:"cleared"`
}

// CountOutput reports the current store size
type CountOutput struct {
	Count int `json:"count"`
}

// PeekOutput returns up to N earliest buffered reviews
type PeekOutput struct {
	Reviews []canon.Review `json:"reviews"`
}

// ArchiveRow is one archived review as read back from Postgres
type ArchiveRow struct {
	BatchID    string `json:"batch_id"`
	Key        string `json:"review_key"`
	Body       string `json:"review_body"`
	AuthorName string `json:"author_name"`
	Verified   bool   `json:"verified_purchase"`
	TextLen    int    `json:"review_length"`
}
