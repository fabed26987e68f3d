package estimator

import (
	"math"
	"math/rand/v2"
	"time"
)

// Refit spends up to budget of wall-clock time proposing and accepting
// simulated-annealing moves against the three move kinds in moves.go: a
// line-segment base shift, a split-point slide, or a
// per-edge delta bump. Temperature falls linearly from startTemp to
// endTemp as elapsed/budget goes from 0 to 1. It is purely sequential and
// self-terminates on the wall clock; there is no external cancellation.
func (e *Estimator) Refit(budget time.Duration) {
	if budget <= 0 || len(e.records) == 0 {
		return
	}
	start := time.Now()
	for {
		elapsed := time.Since(start)
		if elapsed >= budget {
			return
		}
		temp := temperature(elapsed, budget)
		e.refitOnce(temp)
	}
}

// temperature linearly interpolates from startTemp at elapsed=0 to
// endTemp at elapsed=budget.
func temperature(elapsed, budget time.Duration) float64 {
	frac := float64(elapsed) / float64(budget)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return startTemp - (startTemp-endTemp)*frac
}

// accept decides whether a proposed change with the given loss delta is
// taken at temperature t: unconditionally if it does not increase loss,
// otherwise with Boltzmann probability exp(-deltaLoss/t).
func accept(deltaLoss int64, t float64) bool {
	if deltaLoss <= 0 {
		return true
	}
	return rand.Float64() < math.Exp(-float64(deltaLoss)/t)
}

// refitOnce samples one of the three move kinds uniformly and, if it
// proposes a value within domain bounds and touches at least one past
// turn, decides acceptance at temperature t.
func (e *Estimator) refitOnce(t float64) {
	switch rand.IntN(3) {
	case 0:
		e.tryShiftLineBase(t)
	case 1:
		e.trySlideSplit(t)
	case 2:
		e.tryBumpEdgeDelta(t)
	}
}

// turnDelta records how much a proposed move would change one past
// round's cached total cost.
type turnDelta struct {
	turn  int
	delta int64
}

// deltaLossFor sums, over the given per-turn cost changes, the change in
// squared-residual loss: (totalCost+delta-response)² - (totalCost-response)².
func (e *Estimator) deltaLossFor(changes []turnDelta) int64 {
	var sum int64
	for _, c := range changes {
		old := e.totalCosts[c.turn]
		resp := int64(e.records[c.turn].Response)
		before := old - resp
		after := old + c.delta - resp
		sum += after*after - before*before
	}
	return sum
}

// applyTurnDeltas updates the cached total cost of every affected turn
// and folds the accepted move's loss delta into the running total.
func (e *Estimator) applyTurnDeltas(changes []turnDelta, deltaLoss int64) {
	for _, c := range changes {
		e.totalCosts[c.turn] += c.delta
	}
	e.loss += deltaLoss
}

func randSign() int32 {
	if rand.IntN(2) == 0 {
		return -1
	}
	return 1
}
