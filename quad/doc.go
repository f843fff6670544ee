// Package quad implements globally adaptive numerical integration of
// real- and vector-valued functions over finite or infinite intervals,
// using nested Gauss-Kronrod quadrature rules from package kronrod.
//
// Overview:
//
//   - Integrate and IntegrateParallel both partition [a, b] into
//     subintervals, estimate each subinterval's error via package
//     kronrod, and repeatedly bisect the subinterval with the largest
//     error until the running total error satisfies the requested
//     tolerance or a resource bound is hit.
//   - IntegrateParallel refines a batch of worst-error subintervals
//     concurrently across a fixed-size worker pool (package
//     internal/workpool); Integrate refines the same kind of batch one
//     subinterval after another on the calling goroutine.
//   - Infinite bounds are reshaped onto a finite domain by package
//     transform before either engine sees them.
//
// When to use:
//
//   - Any scalar or vector integral where the integrand is expensive
//     enough that a fixed-order rule would under- or over-sample, and
//     where you can state a target absolute or relative tolerance.
//   - IntegrateParallel specifically when the integrand is costly per
//     call and safe to invoke concurrently from multiple goroutines.
//
// Key features:
//
//   - Functional options configure tolerances, rule order, iteration
//     budget, initial breakpoints, and (parallel only) worker count,
//     without changing the call signature.
//   - Optional diagnostics (WithDiagnostics) return the evaluation count,
//     final subinterval count, and the full final partition in
//     decreasing-error order.
//   - Five sentinel error kinds (Invalid, MaxIteration, BadTolerance,
//     BadFunction, Diverge) distinguish why a call failed to converge.
//
// Thread safety:
//
//   - A single call to Integrate or IntegrateParallel owns all of its
//     mutable state for the lifetime of that call; neither function
//     shares state across concurrent calls.
//   - IntegrateParallel requires f to be safe to call concurrently from
//     multiple goroutines and referentially transparent; this is a
//     documented precondition, not something the engine checks.
//
// See also:
//
//   - package kronrod for the quadrature rules and single-interval
//     evaluator.
//   - package transform for the fixed infinite-interval substitutions
//     applied ahead of either engine.
package quad
