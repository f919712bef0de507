// Package list implements the fetch-and-paginate flow shared by every
// entity page: one controller per entity holds loading/error/result state
// and re-runs the query on well-defined triggers from the view layer.
package list

import (
	"context"
	"errors"
	"sync"

	"festadmin/internal/apierr"
	"festadmin/internal/upstream"
)

// Fetcher runs one list query. total is the server count for paginated
// endpoints; flat-array endpoints return len(items).
type Fetcher[T any] func(ctx context.Context, q upstream.Query) (items []T, total int, err error)

// State is the view-facing snapshot of a controller.
// Loading=true always means the previous items and error were cleared.
// ErrStatus keeps the upstream HTTP status alongside the normalized
// message, 0 when the failure never produced one.
type State[T any] struct {
	Items      []T
	Err        string
	ErrStatus  int
	Loading    bool
	TotalCount int
}

// Controller generalizes the per-entity list stores. It is safe for
// concurrent use and fences responses by request sequence: a completion
// that is no longer the newest is discarded, so a slow early request can
// never overwrite fresher state.
type Controller[T any] struct {
	mu     sync.Mutex
	fetch  Fetcher[T]
	locale func() string
	seq    uint64
	state  State[T]
}

// NewController builds a controller. locale feeds error normalization and
// may be nil.
func NewController[T any](fetch Fetcher[T], locale func() string) *Controller[T] {
	if locale == nil {
		locale = func() string { return "" }
	}
	return &Controller[T]{fetch: fetch, locale: locale}
}

// GetList re-issues the query and returns the resulting state. The previous
// items and error are cleared before the request starts; loading ends false
// on success and on failure alike.
func (c *Controller[T]) GetList(ctx context.Context, q upstream.Query) State[T] {
	c.mu.Lock()
	c.seq++
	mySeq := c.seq
	c.state = State[T]{Loading: true}
	c.mu.Unlock()

	items, total, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if mySeq != c.seq {
		// a newer request superseded this one; keep its state
		return c.state
	}
	if err != nil {
		status := 0
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			status = apiErr.Status
		}
		c.state = State[T]{Err: apierr.Normalize(err, c.locale()), ErrStatus: status}
		return c.state
	}
	c.state = State[T]{Items: items, TotalCount: total}
	return c.state
}

// State returns the current snapshot without issuing a request.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reset discards state, as when the owning page unmounts.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = State[T]{}
}

// PageCount returns how many pages total records span at pageSize per page.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
