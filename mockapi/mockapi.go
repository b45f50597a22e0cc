// Package mockapi stands in for a remote backend. Repositories serve seeded
// in-memory collections and sleep a fixed latency before every return to
// emulate network round-trips. Calls are not cancellable, retried, or
// de-duplicated; callers that go away simply discard the result.
//
// Admin-facing product and order mutations intentionally do not write back
// to the shared collections: they synthesize success responses the same way
// the original mock layer did. Order creation is the one genuinely mutating
// path.
package mockapi

import (
	"errors"
	"time"
)

// DefaultLatency is the simulated round-trip applied when none is given.
const DefaultLatency = 300 * time.Millisecond

// ErrNotFound is returned by id lookups that miss.
var ErrNotFound = errors.New("not found")

// Meta describes one page of a listing response.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func pageMeta(page, limit, total int) Meta {
	totalPages := (total + limit - 1) / limit
	return Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// paginate slices one page out of a filtered result set.
func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
