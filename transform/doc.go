// Package transform reshapes integrands and breakpoints defined over
// semi-infinite or doubly-infinite intervals onto a finite domain the
// adaptive engine in package quad can consume directly.
//
// Each substitution below is fixed, not a choice the caller tunes:
//
//	a finite, b = +Inf   ->  [0, 1]    x = a + (1-t)/t       dx = dt/t^2
//	a = -Inf, b finite   ->  [0, 1]    x = b - (1-t)/t       dx = dt/t^2
//	a = -Inf, b = +Inf   ->  [-1, 1]   x = t/(1-|t|)         dx = dt/(1-|t|)^2
//
// The transformed integrand multiplies f(x) by the substitution's
// Jacobian. At the removed endpoint (t=0, or t=+-1 for the doubly-infinite
// case) the transformed integrand is defined as zero: Gauss-Kronrod
// abscissae are always interior to the working interval, so this value is
// never actually sampled by package quad — it exists only so the function
// has a total domain.
package transform
