// Package journal persists canonical reviews as an append-only NDJSON log
package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"arc/internal/core/canon"
	"arc/internal/platform/config"
	perr "arc/internal/platform/errors"
	"arc/internal/platform/logger"
)

// Journal is a durable append-only review log
// one flattened canonical review per line, appended in ingestion order, never rewritten
type Journal struct {
	mu    sync.Mutex
	path  string
	fsync bool
	f     *os.File
}

// line is the persisted shape: the canonical review inlined plus batch provenance
type line struct {
	canon.Review
	BatchID string `json:"batch_id,omitempty"`
}

// Open opens (creating if needed) the journal at path
func Open(path string, fsync bool) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, perr.Journalf("create journal dir: %v", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, perr.Journalf("open journal %s: %v", path, err)
	}
	return &Journal{path: path, fsync: fsync, f: f}, nil
}

// FromConf opens the journal from env configuration
func FromConf(cfg config.Conf) (*Journal, error) {
	return Open(
		cfg.MayString("JOURNAL_PATH", "data/reviews.ndjson"),
		cfg.MayBool("JOURNAL_FSYNC", false),
	)
}

// Path returns the journal file location
func (j *Journal) Path() string { return j.path }

// Append writes one line per review, stamped with the ingest batch id.
// The whole batch is a single write; failures propagate, silent loss here
// is unacceptable
func (j *Journal) Append(ctx context.Context, batchID string, reviews []canon.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, r := range reviews {
		b, err := json.Marshal(line{Review: r, BatchID: batchID})
		if err != nil {
			return perr.Journalf("encode review %q: %v", r.Key, err)
		}
		buf.Write(b)
		buf.WriteByte('\n')
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.f.Write(buf.Bytes()); err != nil {
		return perr.Journalf("append %d review(s): %v", len(reviews), err)
	}
	if j.fsync {
		if err := j.f.Sync(); err != nil {
			return perr.Journalf("fsync: %v", err)
		}
	}

	logger.C(ctx).Debug().
		Str("batch_id", batchID).
		Int("reviews", len(reviews)).
		Msg("journal append")
	return nil
}

// Truncate discards all journal content
func (j *Journal) Truncate() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.f.Truncate(0); err != nil {
		return perr.Journalf("truncate: %v", err)
	}
	return nil
}

// Close releases the file handle
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.f.Close()
}

// ReadAll loads raw review payloads from a captured file for replay.
// It accepts NDJSON, a top-level JSON array, or a {"data":[...]} wrapper
func ReadAll(path string) ([]canon.Raw, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Journalf("read %s: %v", path, err)
	}
	text := strings.TrimSpace(string(b))
	if text == "" {
		return nil, nil
	}

	switch text[0] {
	case '[':
		var rows []canon.Raw
		if err := json.Unmarshal([]byte(text), &rows); err != nil {
			return nil, perr.JSONErrf("parse review array: %v", err)
		}
		return rows, nil
	case '{':
		// some exporters wrap the array in {"data":[...]}
		var wrapped struct {
			Data []canon.Raw `json:"data"`
		}
		if err := json.Unmarshal([]byte(text), &wrapped); err == nil && wrapped.Data != nil {
			return wrapped.Data, nil
		}
	}

	// fallback: NDJSON, one object per line
	var rows []canon.Raw
	for i, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		var row canon.Raw
		if err := json.Unmarshal([]byte(ln), &row); err != nil {
			return nil, perr.JSONErrf("parse line %d: %v", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
