package quad

import (
	"github.com/katalvlaran/gokronrod/ivalqueue"
	"github.com/katalvlaran/gokronrod/kronrod"
	"github.com/katalvlaran/gokronrod/transform"
)

// Integrate computes the definite integral of f over [a, b] by globally
// adaptive subdivision. Each iteration pops a batch of worst-error
// subintervals (up to Options.BatchSize) and bisects them one after
// another on the calling goroutine.
//
// a and b may be +Inf/-Inf in any combination; Integrate applies the
// appropriate substitution from package transform before partitioning.
//
// Integrate never checks that f is safe for concurrent invocation,
// because it never calls f from more than one goroutine; use
// IntegrateParallel when f is expensive and can be called concurrently.
//
// Integrate omits the singularity guard that IntegrateParallel applies to
// every popped subinterval (spec's documented asymmetry); a caller that
// wants that stricter check without genuine parallelism should call
// IntegrateParallel with WithThreads(1).
func Integrate(f Func, a, b float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tf, ta, tb := transform.Apply(f, a, b)
	tPts := transform.Breakpoints(transform.Classify(a, b), a, b, cfg.Breakpoints)
	cfg.Breakpoints = tPts

	r := &runner{
		f:     tf,
		rule:  kronrod.RuleFor(cfg.Rule),
		opts:  cfg,
		queue: ivalqueue.New(2 * cfg.Limit),
	}
	return r.run(ta, tb)
}
