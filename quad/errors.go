package quad

// Kind identifies why Integrate or IntegrateParallel failed to produce a
// converged result.
type Kind int

const (
	// KindInvalid means the tolerance inputs are below the precision
	// floor: AbsTol <= 0 and RelTol < max(50*epsMachine, 0.5e-28).
	KindInvalid Kind = iota
	// KindMaxIteration means Limit subintervals were exhausted without
	// reaching the target tolerance.
	KindMaxIteration
	// KindBadTolerance means roundoff dominates the running error
	// estimate, or (parallel engine only) the stagnation counters
	// tripped. Usually not recoverable by relaxing inputs; the problem
	// itself is ill-conditioned for this method.
	KindBadTolerance
	// KindBadFunction means the parallel engine's singularity guard
	// detected a subinterval straddling what looks like a point
	// singularity near machine precision of the interval's midpoint.
	KindBadFunction
	// KindDiverge is reserved for divergent-integrand detection by
	// future extensions; neither engine currently returns it.
	KindDiverge
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindMaxIteration:
		return "MaxIteration"
	case KindBadTolerance:
		return "BadTolerance"
	case KindBadFunction:
		return "BadFunction"
	case KindDiverge:
		return "Diverge"
	default:
		return "Unknown"
	}
}

// Error reports why an integration failed. Compare against the sentinel
// Err* values below with errors.Is.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return "quad: " + e.msg }

// Is reports whether target is the sentinel Error for e.Kind, so
// errors.Is(err, quad.ErrBadTolerance) works without exposing *Error's
// internals.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// Sentinel errors, one per Kind, usable with errors.Is.
var (
	ErrInvalid      = &Error{Kind: KindInvalid, msg: "tolerance below machine-precision floor"}
	ErrMaxIteration = &Error{Kind: KindMaxIteration, msg: "subinterval limit reached without convergence"}
	ErrBadTolerance = &Error{Kind: KindBadTolerance, msg: "roundoff dominates or refinement stagnated"}
	ErrBadFunction  = &Error{Kind: KindBadFunction, msg: "integrand appears singular at an interior point"}
	ErrDiverge      = &Error{Kind: KindDiverge, msg: "integrand appears divergent"}
)

var _ error = (*Error)(nil)
var _ interface{ Is(error) bool } = (*Error)(nil)
