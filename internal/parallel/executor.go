// Package parallel implements the bounded-concurrency fan-out used to
// enrich worktree and orphan-branch lists: each item runs through a
// caller-supplied processor under its own deadline, failures (including
// panics) are converted to a caller-supplied fallback, and the result
// slice always matches input order regardless of completion order.
package parallel

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sidequest/sidequest/internal/envcfg"
)

// Processor produces a result for one item. Returning an error routes the
// item through onError; so does a deadline fired mid-call or a panic.
type Processor[T any, R any] func(ctx context.Context, item T) (R, error)

// ErrorHandler synthesises a fallback result for an item that failed,
// timed out, or panicked. It must return a value that preserves whatever
// invariants the caller's result type relies on.
type ErrorHandler[T any, R any] func(item T, err error) R

// Options configures one Run call. Zero values defer to env configuration,
// then to the package defaults.
type Options struct {
	// Concurrency bounds how many items run at once. <=0 means "use env
	// or default".
	Concurrency int
	// PerItemTimeout bounds one processor call. <=0 means "use env or
	// default".
	PerItemTimeout time.Duration
}

// resolve applies explicit option > env > default precedence, validating
// any env-sourced value as a positive integer.
func resolve(opts Options) (Options, error) {
	out := opts
	if out.Concurrency <= 0 {
		c, err := envcfg.Concurrency()
		if err != nil {
			return Options{}, fmt.Errorf("parallel: invalid %s: %w", envcfg.EnvConcurrency, err)
		}
		out.Concurrency = c
	}
	if out.PerItemTimeout <= 0 {
		ms, err := envcfg.ItemTimeoutMS()
		if err != nil {
			return Options{}, fmt.Errorf("parallel: invalid %s: %w", envcfg.EnvItemTimeoutMS, err)
		}
		out.PerItemTimeout = time.Duration(ms) * time.Millisecond
	}
	return out, nil
}

// Run fans items out over resolved.Concurrency workers, each bounded by a
// per-item deadline derived from ctx. The returned slice preserves input
// order. Run itself only fails at startup, when concurrency/timeout
// configuration is invalid; every per-item failure is routed through
// onError instead of aborting the batch.
func Run[T any, R any](ctx context.Context, items []T, opts Options, processor Processor[T, R], onError ErrorHandler[T, R]) ([]R, error) {
	resolved, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	results := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolved.Concurrency)

	for i, item := range items {
		g.Go(func() error {
			results[i] = runOne(gctx, resolved.PerItemTimeout, item, processor, onError)
			return nil // failures are carried in results, never fail the group
		})
	}
	_ = g.Wait()

	return results, nil
}

// runOne executes processor for a single item under its own deadline,
// recovering a panic and converting it, the deadline, or a returned error
// into onError's fallback.
func runOne[T any, R any](ctx context.Context, timeout time.Duration, item T, processor Processor[T, R], onError ErrorHandler[T, R]) (result R) {
	itemCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var procErr error
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				procErr = fmt.Errorf("parallel: processor panicked: %v", rec)
			}
		}()
		result, procErr = processor(itemCtx, item)
	}()

	if procErr != nil {
		return onError(item, procErr)
	}
	if itemCtx.Err() != nil {
		// Processor returned a value but ignored the deadline that fired
		// while it ran; the result can't be trusted.
		return onError(item, itemCtx.Err())
	}
	return result
}
