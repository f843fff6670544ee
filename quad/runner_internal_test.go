package quad

import (
	"testing"

	"github.com/katalvlaran/gokronrod/ivalqueue"
	"github.com/katalvlaran/gokronrod/kronrod"
	"github.com/stretchr/testify/require"
)

func TestCheckSingularitiesDetectsCollapsedInterval(t *testing.T) {
	r := &runner{enableGuard: true}
	batch := []ivalqueue.Entry{
		{Interval: ivalqueue.Interval{A: 1 - 5e-16, B: 1 + 5e-16}},
	}
	require.ErrorIs(t, r.checkSingularities(batch), ErrBadFunction)
}

func TestCheckSingularitiesAllowsNormalInterval(t *testing.T) {
	r := &runner{enableGuard: true}
	batch := []ivalqueue.Entry{
		{Interval: ivalqueue.Interval{A: 0, B: 1}},
	}
	require.NoError(t, r.checkSingularities(batch))
}

func TestUpdateStagnationReproducedSum(t *testing.T) {
	r := &runner{last: 1}
	oldSum := kronrod.Vector{1.0}
	newSum := kronrod.Vector{1.0}
	r.updateStagnation(oldSum, newSum, 1.0, 0.995)
	require.Equal(t, 1, r.iroff1)
	require.Equal(t, 0, r.iroff2)
}

func TestUpdateStagnationWorseningError(t *testing.T) {
	r := &runner{last: 11}
	oldSum := kronrod.Vector{1.0}
	newSum := kronrod.Vector{2.0}
	r.updateStagnation(oldSum, newSum, 1.0, 1.5)
	require.Equal(t, 0, r.iroff1)
	require.Equal(t, 1, r.iroff2)
}

func TestNevalFormulaFifteenPoint(t *testing.T) {
	r := &runner{rule: kronrod.RuleFor(1), last: 3}
	require.Equal(t, 30*3+15, r.neval())
}

func TestNevalFormulaOtherRules(t *testing.T) {
	r := &runner{rule: kronrod.RuleFor(2), last: 4}
	require.Equal(t, (10*2+1)*(2*4-1), r.neval())
}

func TestErrbndTakesMax(t *testing.T) {
	r := &runner{opts: Options{AbsTol: 1e-6, RelTol: 1e-3}, S: kronrod.Vector{10}}
	require.InDelta(t, 1e-2, r.errbnd(), 1e-15)
}

func TestPopBatchRespectsBatchSize(t *testing.T) {
	q := ivalqueue.New(8)
	for i := 0; i < 5; i++ {
		q.Push(ivalqueue.Interval{A: float64(i), B: float64(i) + 1}, kronrod.Vector{1}, 1.0, 0)
	}
	r := &runner{opts: Options{BatchSize: 2}, queue: q, S: kronrod.Vector{0}, E: 5.0}
	batch, errSum, oldSum := r.popBatch(0.08)
	require.Len(t, batch, 2)
	require.InDelta(t, 2.0, errSum, 1e-12)
	require.InDelta(t, 2.0, oldSum[0], 1e-12)
	require.Equal(t, 3, q.Len())
}

func TestPopBatchAlwaysPopsAtLeastOne(t *testing.T) {
	q := ivalqueue.New(8)
	q.Push(ivalqueue.Interval{A: 0, B: 1}, kronrod.Vector{1}, 5.0, 0)
	q.Push(ivalqueue.Interval{A: 1, B: 2}, kronrod.Vector{1}, 5.0, 0)
	r := &runner{opts: Options{BatchSize: 8}, queue: q, S: kronrod.Vector{0}}
	batch, _, _ := r.popBatch(1000)
	require.Len(t, batch, 1)
}
