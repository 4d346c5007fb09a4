package service

import (
	"sync"

	"arc/internal/core/canon"
	"arc/internal/services/reviews/domain"
)

// Buffer is the bounded deduplicating store: at most K most-recent canonical
// records, deduplicated keep-last, safe under concurrent mutation
type Buffer struct {
	mu    sync.RWMutex
	cap   int
	items []canon.Review
}

// NewBuffer builds a Buffer with the given capacity (default when <= 0)
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = domain.DefaultCapacity
	}
	return &Buffer{cap: capacity}
}

// Cap returns the configured capacity
func (b *Buffer) Cap() int { return b.cap }

// Ingest appends batch, dedups keep-last, truncates to the last K records.
// The whole read-modify-write runs under the write lock so concurrent
// ingests never interleave. Returns the post-ingest size
func (b *Buffer) Ingest(batch []canon.Review) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(batch) == 0 {
		return len(b.items)
	}

	merged := append(b.items, batch...)
	merged = dedupKeepLast(merged)
	if len(merged) > b.cap {
		merged = merged[len(merged)-b.cap:]
	}
	b.items = merged
	return len(b.items)
}

// Reset clears the store
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.items = nil
	b.mu.Unlock()
}

// Peek returns up to n earliest-order records without mutating state
func (b *Buffer) Peek(n int) []canon.Review {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n < 0 || n > len(b.items) {
		n = len(b.items)
	}
	out := make([]canon.Review, n)
	copy(out, b.items[:n])
	return out
}

// Count returns the current size
func (b *Buffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// dedupKeepLast removes duplicates keeping the later-inserted record.
// Key policy is evaluated fresh per call: if any record in the post-append
// set carries a non-empty review key, dedup by key and treat empty-key
// records as unique; otherwise dedup by body
func dedupKeepLast(items []canon.Review) []canon.Review {
	useKey := false
	for i := range items {
		if items[i].Key != "" {
			useKey = true
			break
		}
	}

	seen := make(map[string]struct{}, len(items))
	out := make([]canon.Review, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		k := items[i].Body
		if useKey {
			k = items[i].Key
			if k == "" {
				// empty keys never collide with each other
				out = append(out, items[i])
				continue
			}
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, items[i])
	}

	// restore insertion order
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}
