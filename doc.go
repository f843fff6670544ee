// Package gokronrod is an adaptive Gauss-Kronrod numerical quadrature
// library.
//
// Overview
//
// gokronrod estimates definite integrals of scalar or vector-valued
// functions over finite, semi-infinite, or doubly-infinite intervals,
// using globally adaptive subdivision: the subinterval with the worst
// error estimate is always refined next, driven by a max-heap rather
// than a fixed subdivision schedule.
//
// Subpackages:
//
//	kronrod/         — fixed Gauss-Kronrod rule tables and one-panel evaluation
//	ivalqueue/       — the worst-error-first subinterval priority queue
//	transform/       — substitutions for semi-infinite/doubly-infinite intervals
//	quad/            — the public Integrate/IntegrateParallel engines
//	internal/workpool — the bounded-concurrency fan-out behind IntegrateParallel
//	cmd/quadcli      — a small CLI harness exercising both engines by name
//
// Quick start:
//
//	res, err := quad.Integrate(func(x float64) quad.Vector {
//	    return quad.Vector{math.Cos(x)}
//	}, 0, 1)
//
// See package quad for the full API and its Example functions for
// runnable scenarios (finite interval, vector integrand, semi/doubly-infinite
// interval).
package gokronrod
