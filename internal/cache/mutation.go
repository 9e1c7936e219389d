package cache

import (
	"context"
	"errors"
)

// ErrDuplicateInFlight is returned when a mutation targeting the same
// logical key as one still in flight is rejected before dispatch. The
// guard exists for non-idempotent endpoints (e.g. invite sending) where a
// double submit would create a duplicate side effect server-side.
var ErrDuplicateInFlight = errors.New("an identical operation is already in flight")

// Phase is the observable lifecycle of one mutation.
type Phase int

const (
	Pending Phase = iota
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Op tracks a mutation from dispatch to completion. Callers may poll Phase
// to disable controls while Pending, or block on Wait for the outcome.
type Op[R any] struct {
	done  chan struct{}
	value R
	err   error
}

// Phase returns the op's current phase.
func (o *Op[R]) Phase() Phase {
	select {
	case <-o.done:
		if o.err != nil {
			return Failed
		}
		return Succeeded
	default:
		return Pending
	}
}

// Wait blocks until the op completes or ctx is done. On completion it
// returns the mutation's value or its error.
func (o *Op[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-o.done:
		return o.value, o.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// MutateFunc performs the family's write against the server.
type MutateFunc[R any] func(ctx context.Context) (R, error)

// Start dispatches a mutation against the family.
//
// key identifies the logical target for the duplicate guard; "" disables
// the guard. A duplicate is rejected synchronously with
// ErrDuplicateInFlight and never reaches the network.
//
// On success the family is marked Stale and exactly one refetch runs before
// the op completes, so a caller observing Succeeded reads a snapshot
// fetched strictly after the mutation's commit. A refetch failure does not
// fail the op: the write stood, and the family is left Errored with its
// previous snapshot showing. On mutation failure the cache is untouched.
func Start[T, R any](ctx context.Context, f *Family[T], key string, fn MutateFunc[R]) (*Op[R], error) {
	if !f.acquire(key) {
		f.metrics.mutationDone(f.name, "duplicate")
		return nil, ErrDuplicateInFlight
	}

	op := &Op[R]{done: make(chan struct{})}
	go func() {
		defer f.release(key)
		defer close(op.done)

		value, err := fn(ctx)
		if err != nil {
			op.err = err
			f.metrics.mutationDone(f.name, "error")
			return
		}
		op.value = value
		f.metrics.mutationDone(f.name, "ok")

		f.markStale()
		if _, err := f.Fetch(ctx); err != nil {
			f.logger.Warn("refetch after mutation failed", "family", f.name, "error", err)
		}
	}()
	return op, nil
}

// Mutate is the blocking form of Start: dispatch, then wait.
func Mutate[T, R any](ctx context.Context, f *Family[T], key string, fn MutateFunc[R]) (R, error) {
	op, err := Start(ctx, f, key, fn)
	if err != nil {
		var zero R
		return zero, err
	}
	return op.Wait(ctx)
}
