// Package workpool implements the bounded-concurrency fan-out that backs
// the parallel adaptive engine (quad.IntegrateParallel). It packages the
// fan-out/fan-in idiom into a reusable pool of a caller-chosen size,
// built on
// golang.org/x/sync/errgroup so the engine can bound the number of
// goroutines used per call instead of spawning one per worklist item.
package workpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one unit of work submitted to a Pool. It returns a result and an
// error; a non-nil error is surfaced to the caller of Map without
// aborting sibling jobs already in flight.
type Job func() (interface{}, error)

// Pool runs Jobs with concurrency bounded to a fixed size.
//
// Pool holds no goroutines or channels between calls to Map; its only
// state is the configured concurrency limit. A Pool is safe for
// concurrent use by multiple goroutines and needs no explicit shutdown,
// but Close is kept as a no-op so callers written against a
// teardown-on-defer convention still compile.
type Pool struct {
	size int
}

// New returns a Pool that runs at most size Jobs concurrently. size is
// clamped to at least 1.
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size}
}

// Map runs jobs with concurrency capped at the pool's size and returns
// their results in the same order as jobs, blocking until every job has
// completed. A job's own error is reported alongside its result at its
// slot; Map itself never fails and never short-circuits sibling jobs
// still in flight, since a popped-interval evaluation error has no
// sibling to cancel.
func (p *Pool) Map(jobs []Job) ([]interface{}, []error) {
	n := len(jobs)
	results := make([]interface{}, n)
	errs := make([]error, n)
	if n == 0 {
		return results, errs
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(p.size)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			value, err := job()
			results[i] = value
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}

// Close is a no-op retained for symmetry with pool-of-goroutines designs
// that need explicit teardown; this Pool spawns nothing outside Map.
func (p *Pool) Close() {}
