package quad

import (
	"math"
	"sort"

	"github.com/katalvlaran/gokronrod/internal/workpool"
	"github.com/katalvlaran/gokronrod/ivalqueue"
	"github.com/katalvlaran/gokronrod/kronrod"
)

// uMin is the smallest positive normal double, 2^-1022.
const uMin = 2.2250738585072014e-308

// runner holds the mutable state for a single Integrate/IntegrateParallel
// call. It is never shared across calls.
type runner struct {
	f    Func
	rule kronrod.Rule
	opts Options

	queue *ivalqueue.Queue
	S     kronrod.Vector
	E, R  float64
	last  int

	enableGuard      bool
	enableStagnation bool
	iroff1, iroff2   int

	pool *workpool.Pool // non-nil only for the parallel engine
}

// refinement is the pure result of bisecting one popped interval: the
// original entry plus the two freshly evaluated halves.
type refinement struct {
	old    ivalqueue.Entry
	loIv   ivalqueue.Interval
	loRes  kronrod.Vector
	loErr  float64
	loRnd  float64
	hiIv   ivalqueue.Interval
	hiRes  kronrod.Vector
	hiErr  float64
	hiRnd  float64
}

// bisectOne splits e's interval at its midpoint and evaluates both halves
// with the rule evaluator. It touches no shared state and is safe to run
// from any goroutine, which is what lets the parallel engine fan it out
// across a worker pool without locks.
func bisectOne(f Func, rule kronrod.Rule, e ivalqueue.Entry) refinement {
	x, y := e.Interval.A, e.Interval.B
	mid := 0.5 * (x + y)

	loRes, loErr, loRnd := kronrod.Evaluate(rule, f, x, mid)
	hiRes, hiErr, hiRnd := kronrod.Evaluate(rule, f, mid, y)

	return refinement{
		old:   e,
		loIv:  ivalqueue.Interval{A: x, B: mid},
		loRes: loRes,
		loErr: loErr,
		loRnd: loRnd,
		hiIv:  ivalqueue.Interval{A: mid, B: y},
		hiRes: hiRes,
		hiErr: hiErr,
		hiRnd: hiRnd,
	}
}

// run executes the shared validation/partition/refinement sequence
// described by spec sections 4.4.1-4.4.8, specialized only by
// enableGuard, enableStagnation and the presence of a worker pool.
func (r *runner) run(a, b float64) (Result, error) {
	if r.opts.AbsTol <= 0 && r.opts.RelTol < toleranceFloor {
		return Result{}, ErrInvalid
	}

	r.partitionInitial(a, b)
	errbnd := r.errbnd()

	if r.E+r.R <= errbnd {
		return r.success(r.E + r.R), nil
	}
	if r.opts.Limit == 1 {
		return Result{}, ErrMaxIteration
	}
	if r.E < r.R {
		return Result{}, ErrBadTolerance
	}

	for r.last < r.opts.Limit {
		batch, errSum, oldSum := r.popBatch(errbnd)

		if r.enableGuard {
			if err := r.checkSingularities(batch); err != nil {
				return Result{}, err
			}
		}

		refs := r.bisectBatch(batch)
		newSum, newErrSum, newRoundSum := r.applyRefinements(refs)

		r.S = r.S.Sub(oldSum).Add(newSum)
		r.E = r.E - errSum + newErrSum
		r.R += newRoundSum
		r.last += len(batch)
		errbnd = r.errbnd()

		if r.enableStagnation {
			r.updateStagnation(oldSum, newSum, errSum, newErrSum)
			if r.iroff1 >= 6 || r.iroff2 >= 20 {
				return Result{}, ErrBadTolerance
			}
		}

		if r.E <= errbnd/8 {
			return r.success(r.E + r.R), nil
		}
		if r.E < r.R {
			return Result{}, ErrBadTolerance
		}
	}

	return Result{}, ErrMaxIteration
}

// partitionInitial builds the initial subinterval partition from the
// sorted, in-range, de-duplicated subset of r.opts.Breakpoints, evaluates
// each piece, and seeds S/E/R/last.
func (r *runner) partitionInitial(a, b float64) {
	pts := sortedInside(a, b, r.opts.Breakpoints)
	bounds := make([]float64, 0, len(pts)+2)
	bounds = append(bounds, a)
	bounds = append(bounds, pts...)
	bounds = append(bounds, b)

	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		result, abserr, roundoff := kronrod.Evaluate(r.rule, r.f, lo, hi)
		r.queue.Push(ivalqueue.Interval{A: lo, B: hi}, result, abserr, roundoff)
		if r.S == nil {
			r.S = make(kronrod.Vector, len(result))
		}
		r.S = r.S.Add(result)
		r.E += abserr
		r.R += roundoff
		r.last++
	}
}

// sortedInside returns the sorted, de-duplicated subset of pts lying
// strictly inside (a, b), discarding non-finite values.
func sortedInside(a, b float64, pts []float64) []float64 {
	seen := make(map[float64]struct{}, len(pts))
	out := make([]float64, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		if p <= a || p >= b {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Float64s(out)
	return out
}

// errbnd computes max(epsabs, epsrel*||S||2).
func (r *runner) errbnd() float64 {
	return math.Max(r.opts.AbsTol, r.opts.RelTol*r.S.Norm2())
}

// popBatch drains the worklist for one refinement iteration: up to
// BatchSize intervals, stopping early once the queue empties or the
// cumulative popped error exceeds E - errbnd/8. At least one interval is
// always popped while the queue is non-empty, even if that budget is
// already non-positive.
func (r *runner) popBatch(errbnd float64) ([]ivalqueue.Entry, float64, kronrod.Vector) {
	budget := r.E - errbnd/8
	batch := make([]ivalqueue.Entry, 0, r.opts.BatchSize)
	oldSum := make(kronrod.Vector, len(r.S))
	var errSum float64

	for len(batch) < r.opts.BatchSize && !r.queue.IsEmpty() {
		e := r.queue.PopMax()
		batch = append(batch, e)
		errSum += e.AbsErr
		oldSum = oldSum.Add(e.Result)
		if errSum > budget {
			break
		}
	}
	return batch, errSum, oldSum
}

// checkSingularities implements the spec's parallel-engine singularity
// guard: a popped interval whose midpoint is not comfortably interior to
// its own magnitude is treated as straddling a pathological point.
func (r *runner) checkSingularities(batch []ivalqueue.Entry) error {
	for _, e := range batch {
		x, y := e.Interval.A, e.Interval.B
		mid := 0.5 * (x + y)
		threshold := (1 + 100*epsMachine) * (math.Abs(mid) + 1000*uMin)
		if math.Max(math.Abs(x), math.Abs(y)) <= threshold {
			return ErrBadFunction
		}
	}
	return nil
}

// bisectBatch evaluates both halves of every popped interval, either
// sequentially or fanned out across r.pool.
func (r *runner) bisectBatch(batch []ivalqueue.Entry) []refinement {
	if r.pool == nil {
		refs := make([]refinement, len(batch))
		for i, e := range batch {
			refs[i] = bisectOne(r.f, r.rule, e)
		}
		return refs
	}

	jobs := make([]workpool.Job, len(batch))
	for i, e := range batch {
		e := e
		jobs[i] = func() (interface{}, error) {
			return bisectOne(r.f, r.rule, e), nil
		}
	}
	results, _ := r.pool.Map(jobs)
	refs := make([]refinement, len(batch))
	for i, v := range results {
		refs[i] = v.(refinement)
	}
	return refs
}

// applyRefinements pushes every new half-interval into the queue and
// folds their contributions into this iteration's new_sum/new_err_sum/
// new_round_sum. All of this runs on the coordinating goroutine only.
func (r *runner) applyRefinements(refs []refinement) (newSum kronrod.Vector, newErrSum, newRoundSum float64) {
	newSum = make(kronrod.Vector, len(r.S))
	for _, rf := range refs {
		r.queue.Push(rf.loIv, rf.loRes, rf.loErr, rf.loRnd)
		r.queue.Push(rf.hiIv, rf.hiRes, rf.hiErr, rf.hiRnd)
		newSum = newSum.Add(rf.loRes).Add(rf.hiRes)
		newErrSum += rf.loErr + rf.hiErr
		newRoundSum += rf.loRnd + rf.hiRnd
	}
	return newSum, newErrSum, newRoundSum
}

// updateStagnation advances the two roundoff/oscillation counters
// described in spec 4.4.6.
func (r *runner) updateStagnation(oldSum, newSum kronrod.Vector, errSum, newErrSum float64) {
	reproduced := true
	for i := range oldSum {
		if math.Abs(newSum[i]-oldSum[i]) >= 1e-5 {
			reproduced = false
			break
		}
	}
	if reproduced && newErrSum >= 0.99*errSum {
		r.iroff1++
	}
	if r.last > 10 && newErrSum > errSum {
		r.iroff2++
	}
}

// neval computes the evaluation count exactly as spec 4.4.4 defines it:
// derived once from the rule key and final subinterval count, never
// accumulated mid-loop.
func (r *runner) neval() int {
	key := r.rule.Key
	if key == 1 {
		return 30*r.last + 15
	}
	return (10*key + 1) * (2*r.last - 1)
}

// success builds the Result payload, attaching diagnostics when
// requested.
func (r *runner) success(totalErr float64) Result {
	res := Result{Value: r.S, AbsErr: totalErr}
	if r.opts.Diagnostics {
		diag := &Diagnostics{NEval: r.neval(), Last: r.last}
		for _, e := range r.queue.Drain() {
			diag.Intervals = append(diag.Intervals, IntervalReport{
				A: e.Interval.A, B: e.Interval.B, Err: e.AbsErr, Estimate: e.Result,
			})
		}
		res.Diagnostics = diag
	}
	return res
}
