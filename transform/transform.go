package transform

import (
	"math"

	"github.com/katalvlaran/gokronrod/kronrod"
)

// Kind identifies which of the three fixed substitutions applies to a
// given (a, b) pair.
type Kind int

const (
	// None means both endpoints are already finite; no transform needed.
	None Kind = iota
	// PosInf means b = +Inf and a is finite.
	PosInf
	// NegInf means a = -Inf and b is finite.
	NegInf
	// Doubly means both endpoints are infinite.
	Doubly
)

// Classify inspects (a, b) and reports which substitution, if any,
// applies.
func Classify(a, b float64) Kind {
	aInf := math.IsInf(a, -1)
	bInf := math.IsInf(b, 1)
	switch {
	case aInf && bInf:
		return Doubly
	case bInf:
		return PosInf
	case aInf:
		return NegInf
	default:
		return None
	}
}

// Apply transforms (f, a, b) according to Classify(a, b), returning a new
// integrand and finite bounds suitable for package quad. If a and b are
// already finite, f, a and b are returned unchanged.
func Apply(f kronrod.Func, a, b float64) (kronrod.Func, float64, float64) {
	switch Classify(a, b) {
	case PosInf:
		return semiinfinite(a, f), 0, 1
	case NegInf:
		return negSemiinfinite(b, f), 0, 1
	case Doubly:
		return doublyInfinite(f), -1, 1
	default:
		return f, a, b
	}
}

// semiinfinite maps [a, +Inf) onto [0, 1] via x = a + (1-t)/t.
func semiinfinite(a float64, f kronrod.Func) kronrod.Func {
	return func(t float64) kronrod.Vector {
		if t == 0 {
			return zeroLike(f, a+1)
		}
		x := a + (1-t)/t
		jac := 1 / (t * t)
		return f(x).Scale(jac)
	}
}

// negSemiinfinite maps (-Inf, b] onto [0, 1] via x = b - (1-t)/t.
func negSemiinfinite(b float64, f kronrod.Func) kronrod.Func {
	return func(t float64) kronrod.Vector {
		if t == 0 {
			return zeroLike(f, b-1)
		}
		x := b - (1-t)/t
		jac := 1 / (t * t)
		return f(x).Scale(jac)
	}
}

// doublyInfinite maps (-Inf, +Inf) onto [-1, 1] via x = t/(1-|t|).
func doublyInfinite(f kronrod.Func) kronrod.Func {
	return func(t float64) kronrod.Vector {
		at := math.Abs(t)
		if at == 1 {
			return zeroLike(f, 0)
		}
		denom := 1 - at
		x := t / denom
		jac := 1 / (denom * denom)
		return f(x).Scale(jac)
	}
}

// zeroLike evaluates f at a representative interior point solely to learn
// the integrand's vector length, then returns the zero vector of that
// length. probe is never itself part of a requested result; callers only
// reach this path at the removed endpoint, which package quad's rule
// evaluator never samples.
func zeroLike(f kronrod.Func, probe float64) kronrod.Vector {
	n := len(f(probe))
	return make(kronrod.Vector, n)
}

// Breakpoints maps user-supplied breakpoints in original (x) coordinates
// to the transformed t-coordinates appropriate for kind, dropping any
// point that maps to a non-finite t. For the three infinite kinds,
// breakpoints outside the original (a, b) or equal to an infinite
// endpoint are silently ignored. For kind None the finite points are
// returned unchanged, including any outside (a, b); quad's partitioning
// drops those afterwards.
func Breakpoints(kind Kind, a, b float64, pts []float64) []float64 {
	out := make([]float64, 0, len(pts))
	for _, x := range pts {
		var t float64
		switch kind {
		case PosInf:
			if math.IsInf(x, 0) || x <= a {
				continue
			}
			t = 1 / (x - a + 1)
		case NegInf:
			if math.IsInf(x, 0) || x >= b {
				continue
			}
			t = 1 / (b - x + 1)
		case Doubly:
			if math.IsInf(x, 0) {
				continue
			}
			t = x / (1 + math.Abs(x))
		default:
			t = x
		}
		if !math.IsNaN(t) && !math.IsInf(t, 0) {
			out = append(out, t)
		}
	}
	return out
}
