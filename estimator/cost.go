package estimator

import "github.com/katalvlaran/adaptivepath/grid"

// segmentFor returns which of a line's two base-cost regimes edge x belongs
// to, given that line's current split point.
func segmentFor(mid, x byte) int {
	if x < mid {
		return 0
	}
	return 1
}

// GetCost returns the current predicted cost of e. It is O(1) and
// deterministic in the estimator's current parameters.
func (e *Estimator) GetCost(edge grid.EdgeIndex) uint32 {
	line := edge.Line.Ordinal()
	seg := segmentFor(e.midX[line], edge.X)
	cost := int64(e.lineBase[line][seg]) + int64(e.edgeDelta[edge.Ordinal()])
	if cost < 0 {
		cost = 0
	}
	return uint32(cost)
}

// Cost adapts GetCost to dijkstra.CostFunc's (Position, Direction) shape.
// It must only be called for legal moves, matching dijkstra.Search's
// contract.
func (e *Estimator) Cost(p grid.Position, d grid.Direction) uint32 {
	edge, ok := grid.NewEdgeIndex(p, d)
	if !ok {
		panic("estimator: Cost called for an illegal move")
	}
	return e.GetCost(edge)
}
