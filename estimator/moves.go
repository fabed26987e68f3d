package estimator

import (
	"math/rand/v2"

	"github.com/katalvlaran/adaptivepath/grid"
)

// tryShiftLineBase is move 0: shift one segment's base cost on a random
// line by ±step, rejecting proposals outside [minLineBase, maxLineBase].
func (e *Estimator) tryShiftLineBase(t float64) {
	line := rand.IntN(grid.NumLines)
	seg := rand.IntN(2)
	sign := randSign()

	cur := int64(e.lineBase[line][seg])
	next := cur + int64(sign)*step
	if next < minLineBase || next > maxLineBase {
		return
	}

	var changes []turnDelta
	for turn := range e.turnsPerLine[line] {
		vc := e.visitCounts[turn][line][seg]
		if vc == 0 {
			continue
		}
		changes = append(changes, turnDelta{turn: turn, delta: int64(sign) * step * int64(vc)})
	}
	if len(changes) == 0 {
		return // no turn contributed: abandon without penalizing the move count
	}

	deltaLoss := e.deltaLossFor(changes)
	if !accept(deltaLoss, t) {
		return
	}

	e.lineBase[line][seg] = uint32(next)
	e.applyTurnDeltas(changes, deltaLoss)
}

// trySlideSplit is move 1: slide a line's split point by ±1, rejecting
// proposals outside [1, N-2]. Exactly one edge changes segment.
func (e *Estimator) trySlideSplit(t float64) {
	line := rand.IntN(grid.NumLines)
	sign := randSign()

	curMid := int(e.midX[line])
	newMid := curMid + int(sign)
	if newMid < 1 || newMid > grid.N-2 {
		return
	}

	var movedX byte
	var oldSeg, newSeg int
	if sign > 0 {
		// edge at x=curMid moves from segment 1 to segment 0.
		movedX = byte(curMid)
		oldSeg, newSeg = 1, 0
	} else {
		// edge at x=newMid moves from segment 0 to segment 1.
		movedX = byte(newMid)
		oldSeg, newSeg = 0, 1
	}

	lineIdx := lineFromOrdinal(line)
	edge := grid.EdgeIndex{Line: lineIdx, X: movedX}
	edgeOrdinal := edge.Ordinal()

	deltaCost := int64(e.lineBase[line][newSeg]) - int64(e.lineBase[line][oldSeg])

	var changes []turnDelta
	for turn := range e.turnsPerEdge[edgeOrdinal] {
		changes = append(changes, turnDelta{turn: turn, delta: deltaCost})
	}
	if len(changes) == 0 {
		return
	}

	deltaLoss := e.deltaLossFor(changes)
	if !accept(deltaLoss, t) {
		return
	}

	e.midX[line] = byte(newMid)
	for _, c := range changes {
		e.visitCounts[c.turn][line][oldSeg]--
		e.visitCounts[c.turn][line][newSeg]++
	}
	e.applyTurnDeltas(changes, deltaLoss)
}

// tryBumpEdgeDelta is move 2: bump one edge's perturbation by ±step,
// rejecting proposals outside [-maxEdgeDelta, maxEdgeDelta].
func (e *Estimator) tryBumpEdgeDelta(t float64) {
	edgeOrdinal := rand.IntN(grid.NumEdges)
	sign := randSign()

	cur := int64(e.edgeDelta[edgeOrdinal])
	next := cur + int64(sign)*step
	if next < -maxEdgeDelta || next > maxEdgeDelta {
		return
	}

	var changes []turnDelta
	for turn := range e.turnsPerEdge[edgeOrdinal] {
		changes = append(changes, turnDelta{turn: turn, delta: int64(sign) * step})
	}
	if len(changes) == 0 {
		return
	}

	deltaLoss := e.deltaLossFor(changes)
	if !accept(deltaLoss, t) {
		return
	}

	e.edgeDelta[edgeOrdinal] = int32(next)
	e.applyTurnDeltas(changes, deltaLoss)
}

// lineFromOrdinal inverts LineIndex.Ordinal.
func lineFromOrdinal(ord int) grid.LineIndex {
	if ord < grid.N {
		return grid.LineIndex{Axis: grid.Horizontal, Index: byte(ord)}
	}
	return grid.LineIndex{Axis: grid.Vertical, Index: byte(ord - grid.N)}
}
