// Package repo provides the Postgres archive mirror for ingested reviews
package repo

import (
	"context"
	"fmt"
	"strings"

	"arc/internal/core/canon"
	"arc/internal/modkit/repokit"
	perr "arc/internal/platform/errors"
	"arc/internal/services/reviews/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the review archive repository
type Storage interface {
	InsertBatch(ctx context.Context, batchID string, reviews []canon.Review) error
	TruncateAll(ctx context.Context) error
	Recent(ctx context.Context, limit int) ([]domain.ArchiveRow, error)
}

type pg struct{ q repokit.Queryer }

// InsertBatch appends one archive row per review in a single multi-row INSERT
func (s *pg) InsertBatch(ctx context.Context, batchID string, reviews []canon.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		INSERT INTO reviews_archive (
			batch_id, review_key, review_title, review_body, review_length,
			rating, verified_purchase, image_count, author_name,
			product_asin, page_url, scrape_ts
		) VALUES `)

	for i, r := range reviews {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(" + strings.Join([]string{
			arg(batchID), arg(r.Key), arg(r.Title), arg(r.Body), arg(r.TextLen),
			arg(r.Rating), arg(r.Verified), arg(r.ImageCount), arg(r.AuthorName),
			arg(r.ProductASIN), arg(r.PageURL), arg(r.ScrapeTS),
		}, ", ") + ")")
	}

	if _, err := s.q.Exec(ctx, sb.String(), args...); err != nil {
		return perr.FromPostgresf(err, "archive insert batch %s", batchID)
	}
	return nil
}

// TruncateAll clears the archive, mirroring a store reset
func (s *pg) TruncateAll(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, `TRUNCATE reviews_archive`); err != nil {
		return perr.FromPostgresf(err, "archive truncate")
	}
	return nil
}

// Recent returns the most recently archived rows for diagnostics
func (s *pg) Recent(ctx context.Context, limit int) ([]domain.ArchiveRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.q.Query(ctx, `
		SELECT batch_id, review_key, review_body, author_name, verified_purchase, review_length
		FROM reviews_archive
		ORDER BY id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, perr.FromPostgresf(err, "archive recent")
	}
	defer rows.Close()

	out := make([]domain.ArchiveRow, 0, limit)
	for rows.Next() {
		var r domain.ArchiveRow
		if err := rows.Scan(&r.BatchID, &r.Key, &r.Body, &r.AuthorName, &r.Verified, &r.TextLen); err != nil {
			return nil, perr.FromPostgresf(err, "archive scan")
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
