// Package kronrod holds the fixed-coefficient Gauss–Kronrod quadrature
// rules and the single-interval evaluator built on top of them.
//
// A Gauss–Kronrod pair is two nested quadrature rules: a lower-order Gauss
// rule and a higher-order Kronrod rule that reuses every Gauss abscissa and
// adds new ones. The Kronrod estimate is returned as the integral
// approximation; the gap between the two estimates drives the error
// estimate consumed by the adaptive engine in package quad.
//
// Six rules are available, indexed 1 through 6 and mapping to point counts
// 15, 21, 31, 41, 51 and 61. Coefficients are literal data ported from the
// standard QUADPACK tables (dqk15/dqk21/dqk31/dqk41/dqk51/dqk61) and must
// not be "cleaned up" or recomputed — callers rely on bit-identical results
// across versions of this package.
package kronrod
