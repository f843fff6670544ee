package quad

import (
	"runtime"

	"github.com/katalvlaran/gokronrod/internal/workpool"
	"github.com/katalvlaran/gokronrod/ivalqueue"
	"github.com/katalvlaran/gokronrod/kronrod"
	"github.com/katalvlaran/gokronrod/transform"
)

// IntegrateParallel computes the definite integral of f over [a, b],
// identical in contract to Integrate, except that each refinement
// iteration bisects its whole worklist concurrently across a fixed-size
// worker pool (package internal/workpool).
//
// f must be safe to call concurrently from multiple goroutines and must
// be referentially transparent (same input always yields the same
// output); IntegrateParallel assumes this and does not enforce it. No
// goroutine observes a partially updated accumulator, heap or cache: all
// bisection results are folded into the engine's shared state by the
// calling goroutine only, after every worker in the current batch has
// returned.
//
// Unlike Integrate, IntegrateParallel also enforces the singularity guard
// (a popped subinterval whose endpoints do not comfortably bracket an
// interior point fails the call with ErrBadFunction) and the stagnation
// counters that detect a refinement loop making no further progress.
func IntegrateParallel(f Func, a, b float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	tf, ta, tb := transform.Apply(f, a, b)
	tPts := transform.Breakpoints(transform.Classify(a, b), a, b, cfg.Breakpoints)
	cfg.Breakpoints = tPts

	pool := workpool.New(threads)
	defer pool.Close()

	r := &runner{
		f:                tf,
		rule:             kronrod.RuleFor(cfg.Rule),
		opts:             cfg,
		queue:            ivalqueue.New(2 * cfg.Limit),
		enableGuard:      true,
		enableStagnation: true,
		pool:             pool,
	}
	return r.run(ta, tb)
}
