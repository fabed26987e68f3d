package estimator

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/adaptivepath/grid"
)

// ValidateCache recomputes every cached quantity from scratch under the
// current parameters and asserts it matches what is stored. It is the
// test-only correctness hook for the invariant "every cache is a pure
// function of records + parameters" — no other code may mutate the
// caches directly.
func (e *Estimator) ValidateCache() error {
	wantTurnsPerLine := make([]map[int]struct{}, grid.NumLines)
	wantTurnsPerEdge := make([]map[int]struct{}, len(e.turnsPerEdge))
	for i := range wantTurnsPerLine {
		wantTurnsPerLine[i] = make(map[int]struct{})
	}
	for i := range wantTurnsPerEdge {
		wantTurnsPerEdge[i] = make(map[int]struct{})
	}

	var wantLoss int64
	for turn, rec := range e.records {
		var vc visitBreakdown
		var totalCost int64
		for edge := range rec.Visited {
			line := edge.Line.Ordinal()
			seg := segmentFor(e.midX[line], edge.X)
			vc[line][seg]++
			totalCost += int64(e.GetCost(edge))
			wantTurnsPerLine[line][turn] = struct{}{}
			wantTurnsPerEdge[edge.Ordinal()][turn] = struct{}{}
		}

		if vc != e.visitCounts[turn] {
			return fmt.Errorf("%w: turn %d visitCount = %+v, want %+v", ErrCacheInconsistent, turn, e.visitCounts[turn], vc)
		}
		if totalCost != e.totalCosts[turn] {
			return fmt.Errorf("%w: turn %d totalCost = %d, want %d", ErrCacheInconsistent, turn, e.totalCosts[turn], totalCost)
		}
		wantLoss += squaredResidual(totalCost, rec.Response)
	}

	if wantLoss != e.loss {
		return fmt.Errorf("%w: loss = %d, want %d", ErrCacheInconsistent, e.loss, wantLoss)
	}

	for line := range e.turnsPerLine {
		if diff := cmp.Diff(wantTurnsPerLine[line], e.turnsPerLine[line]); diff != "" {
			return fmt.Errorf("%w: turnsPerLine[%d] mismatch (-want +got):\n%s", ErrCacheInconsistent, line, diff)
		}
	}
	for edge := range e.turnsPerEdge {
		if diff := cmp.Diff(wantTurnsPerEdge[edge], e.turnsPerEdge[edge]); diff != "" {
			return fmt.Errorf("%w: turnsPerEdge[%d] mismatch (-want +got):\n%s", ErrCacheInconsistent, edge, diff)
		}
	}

	return nil
}
