package estimator

import (
	"time"

	"github.com/katalvlaran/adaptivepath/grid"
)

// InsertRecord appends a new completed round, updates every cache, then
// spends Refit's wall-clock budget improving the fit. path must be a
// legal simple path from query.Src to query.Dest — InsertRecord checks
// that it ends at Dest and never leaves the grid, returning an error if
// not, but (per the estimator's contract) the caller is responsible for
// never calling it with an illegal path.
func (e *Estimator) InsertRecord(query grid.Query, path []grid.Direction, response uint32) error {
	turn := len(e.records)

	visited := make(map[grid.EdgeIndex]struct{}, len(path))
	var vc visitBreakdown
	var totalCost int64

	p := query.Src
	for _, d := range path {
		edge, ok := grid.NewEdgeIndex(p, d)
		if !ok {
			return ErrPathLeavesGrid
		}
		visited[edge] = struct{}{}
		line := edge.Line.Ordinal()
		seg := segmentFor(e.midX[line], edge.X)
		vc[line][seg]++
		totalCost += int64(e.GetCost(edge))

		p, _ = p.Move(d)
	}
	if p != query.Dest {
		return ErrPathNotAtDest
	}

	for edge := range visited {
		e.turnsPerLine[edge.Line.Ordinal()][turn] = struct{}{}
		e.turnsPerEdge[edge.Ordinal()][turn] = struct{}{}
	}

	e.records = append(e.records, Record{Query: query, Path: path, Response: response, Visited: visited})
	e.visitCounts = append(e.visitCounts, vc)
	e.totalCosts = append(e.totalCosts, totalCost)
	e.loss += squaredResidual(totalCost, response)

	e.Refit(e.perTurnBudget())

	return nil
}

func squaredResidual(totalCost int64, response uint32) int64 {
	d := totalCost - int64(response)
	return d * d
}

// perTurnBudget is the wall-clock slice Refit gets per InsertRecord call:
// 90% of the session budget divided evenly across NumTurns rounds.
func (e *Estimator) perTurnBudget() time.Duration {
	return time.Duration(float64(e.TimeLimit) / grid.NumTurns * 0.9)
}
