package quad

// Result is the successful payload of Integrate/IntegrateParallel.
type Result struct {
	// Value is the running integral estimate, one component per
	// integrand output dimension.
	Value Vector
	// AbsErr is the total absolute error estimate E+R at the point the
	// engine converged.
	AbsErr float64
	// Diagnostics is non-nil only when WithDiagnostics() was requested.
	Diagnostics *Diagnostics
}

// Diagnostics carries the optional, more expensive-to-produce detail
// behind a successful Result.
type Diagnostics struct {
	// NEval is the number of integrand evaluations, computed once at
	// exit: 30*Last+15 for the 15-point rule, otherwise
	// (10*ruleKey+1)*(2*Last-1).
	NEval int
	// Last is the final number of live subintervals.
	Last int
	// Intervals is the final partition, drained from the heap in
	// decreasing-error order.
	Intervals []IntervalReport
}

// IntervalReport describes one subinterval in the final partition.
type IntervalReport struct {
	A, B     float64
	Err      float64
	Estimate Vector
}
