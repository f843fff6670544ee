package quad

import (
	"math"

	"github.com/katalvlaran/gokronrod/kronrod"
)

// Vector is a fixed-length real vector produced by an integrand. The
// scalar case is a Vector of length 1.
type Vector = kronrod.Vector

// Func maps a scalar evaluation point to a result Vector. Purity (no
// observable side effects, identical input always yields identical
// output) is required for both engines' caching and is an additional
// hard precondition for IntegrateParallel's concurrent evaluation.
type Func = kronrod.Func

// defaultBatchSize is the maximum number of worst-error intervals popped
// into one refinement batch, per the B=128 cap.
const defaultBatchSize = 128

// Options configures Integrate and IntegrateParallel. Build one with
// DefaultOptions and the With* functional options below, mirroring the
// rest of this module's functional-option style.
type Options struct {
	AbsTol      float64
	RelTol      float64
	Rule        int
	Limit       int
	Breakpoints []float64
	Diagnostics bool
	Threads     int // parallel engine only; 0 means runtime.GOMAXPROCS(0)
	BatchSize   int
}

// Option is a functional option for Integrate/IntegrateParallel.
type Option func(*Options)

// DefaultOptions returns the documented defaults: AbsTol=1.49e-8,
// RelTol=1.49e-8, Rule=2 (21-point), Limit=50, no breakpoints, no
// diagnostics, BatchSize=128, Threads=0 (auto).
func DefaultOptions() Options {
	return Options{
		AbsTol:    1.49e-8,
		RelTol:    1.49e-8,
		Rule:      2,
		Limit:     50,
		BatchSize: defaultBatchSize,
	}
}

// WithAbsTol sets the absolute error tolerance.
func WithAbsTol(tol float64) Option {
	return func(o *Options) { o.AbsTol = tol }
}

// WithRelTol sets the relative error tolerance, measured against the
// Euclidean norm of the running result vector.
func WithRelTol(tol float64) Option {
	return func(o *Options) { o.RelTol = tol }
}

// WithRule selects the Gauss-Kronrod rule key (1..6, mapping to point
// counts 15/21/31/41/51/61). Out-of-range keys are clamped by
// kronrod.RuleFor, not by this option.
func WithRule(key int) Option {
	return func(o *Options) { o.Rule = key }
}

// WithLimit bounds the number of subintervals the engine may create.
// Must be >= 1.
func WithLimit(limit int) Option {
	return func(o *Options) { o.Limit = limit }
}

// WithBreakpoints supplies initial interior subdivision points. Points
// outside (a, b), duplicates, and non-finite values are ignored.
func WithBreakpoints(pts ...float64) Option {
	return func(o *Options) { o.Breakpoints = append(o.Breakpoints, pts...) }
}

// WithDiagnostics requests the optional diagnostic payload (evaluation
// count, final subinterval count, and full final partition) in the
// returned Result.
func WithDiagnostics() Option {
	return func(o *Options) { o.Diagnostics = true }
}

// WithThreads sets the worker pool size for IntegrateParallel. Ignored
// (with no effect) by Integrate: the sequential engine never reads this
// field, matching the teacher-style convention of accepting but
// documenting no-op options rather than rejecting them.
func WithThreads(n int) Option {
	return func(o *Options) { o.Threads = n }
}

// WithBatchSize overrides the default 128-interval refinement batch cap,
// clamped to [1, 128]. Supplements the base specification per the
// original Rust implementation's configurable parallel batch size.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		} else if n > defaultBatchSize {
			n = defaultBatchSize
		}
		o.BatchSize = n
	}
}

// epsMachine is the IEEE-754 double relative machine precision, 2^-52.
const epsMachine = 2.220446049250313e-16

// toleranceFloor is the minimum relative tolerance accepted when AbsTol
// <= 0, per the engine's Invalid guard: max(50*epsMachine, 0.5e-28).
var toleranceFloor = math.Max(50*epsMachine, 0.5e-28)
