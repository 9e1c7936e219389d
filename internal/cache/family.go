// Package cache implements the per-resource-family snapshot cache and the
// mutation protocol built on it.
//
// Each resource family (events, checklists, savings, partnership, pending
// invites) gets one Family value holding the last successfully fetched
// snapshot. Mutations never patch the snapshot locally: a successful write
// marks the family Stale and triggers exactly one refetch, so the cache
// only ever holds whole server-produced snapshots. Failed fetches keep the
// previous snapshot on display and are never retried automatically.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// State is the lifecycle state of a family's cache entry.
type State int

const (
	// Idle: nothing fetched yet.
	Idle State = iota
	// Fetching: a fetch is in flight.
	Fetching
	// Fresh: the snapshot matches the last known server state.
	Fresh
	// Stale: a mutation succeeded since the snapshot was taken.
	Stale
	// Errored: the last fetch failed; any previous snapshot is retained.
	Errored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// FetchFunc loads a family's snapshot from the server.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Family is the cache entry for one resource family.
type Family[T any] struct {
	name    string
	fetchFn FetchFunc[T]
	logger  *slog.Logger
	metrics *Metrics
	now     func() time.Time

	mu          sync.Mutex
	state       State
	snapshot    T
	hasSnapshot bool
	fetchedAt   time.Time
	lastErr     error

	// generation orders fetches: a fetch only applies its result if no
	// later fetch started while it was in flight.
	generation uint64

	// inflight holds the duplicate-mutation guard keys.
	inflight map[string]struct{}
}

// NewFamily creates an Idle family. metrics may be nil.
func NewFamily[T any](name string, fetch FetchFunc[T], logger *slog.Logger, metrics *Metrics) *Family[T] {
	return &Family[T]{
		name:     name,
		fetchFn:  fetch,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
		inflight: make(map[string]struct{}),
	}
}

// Name returns the family key.
func (f *Family[T]) Name() string { return f.name }

// Fetch loads a fresh snapshot. On success the family becomes Fresh; on
// failure it becomes Errored and the previous snapshot, if any, is kept.
// There is no automatic retry: transient failures surface to the caller.
//
// A fetch that was overtaken by a later fetch discards its result instead
// of clobbering the newer snapshot.
func (f *Family[T]) Fetch(ctx context.Context) (T, error) {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.state = Fetching
	f.mu.Unlock()

	snapshot, err := f.fetchFn(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		// A later fetch started; whatever it lands is more current.
		f.logger.Debug("dropping superseded fetch result", "family", f.name)
		var zero T
		if err != nil {
			return zero, err
		}
		return snapshot, nil
	}

	if err != nil {
		f.state = Errored
		f.lastErr = err
		f.metrics.fetchDone(f.name, "error")
		f.logger.Warn("fetch failed", "family", f.name, "error", err)
		var zero T
		return zero, err
	}

	f.snapshot = snapshot
	f.hasSnapshot = true
	f.fetchedAt = f.now()
	f.state = Fresh
	f.lastErr = nil
	f.metrics.fetchDone(f.name, "ok")
	f.logger.Debug("fetch completed", "family", f.name)
	return snapshot, nil
}

// Snapshot returns the last successful snapshot, its fetch time, and
// whether one exists. An Errored family still serves its previous snapshot
// (stale-but-shown).
func (f *Family[T]) Snapshot() (T, time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot, f.fetchedAt, f.hasSnapshot
}

// State returns the current lifecycle state.
func (f *Family[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the last fetch error, cleared by the next successful fetch.
func (f *Family[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// markStale records that the snapshot no longer matches server state.
func (f *Family[T]) markStale() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Stale
	f.metrics.invalidated(f.name)
	f.logger.Debug("snapshot invalidated", "family", f.name)
}

// acquire registers a mutation guard key. It reports false when an
// identical mutation is already in flight.
func (f *Family[T]) acquire(key string) bool {
	if key == "" {
		return true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, dup := f.inflight[key]; dup {
		return false
	}
	f.inflight[key] = struct{}{}
	return true
}

func (f *Family[T]) release(key string) {
	if key == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inflight, key)
}
