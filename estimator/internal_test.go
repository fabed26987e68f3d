package estimator

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/katalvlaran/adaptivepath/grid"
)

// syntheticHistory builds n records of straight-line paths between random
// positions, without going through InsertRecord's own Refit calls, so the
// fuzz test below can drive refitOnce directly and control iteration
// count precisely.
func syntheticHistory(t *testing.T, e *Estimator, n int, rng *rand.Rand) {
	t.Helper()
	for i := 0; i < n; i++ {
		src := grid.Position{R: byte(rng.IntN(grid.N)), C: byte(rng.IntN(grid.N))}
		dest := grid.Position{R: byte(rng.IntN(grid.N)), C: byte(rng.IntN(grid.N))}

		var path []grid.Direction
		p := src
		for p.R != dest.R {
			d := grid.Down
			if p.R > dest.R {
				d = grid.Up
			}
			path = append(path, d)
			p, _ = p.Move(d)
		}
		for p.C != dest.C {
			d := grid.Right
			if p.C > dest.C {
				d = grid.Left
			}
			path = append(path, d)
			p, _ = p.Move(d)
		}

		turn := len(e.records)
		visited := make(map[grid.EdgeIndex]struct{}, len(path))
		var vc visitBreakdown
		var totalCost int64
		walker := src
		for _, d := range path {
			edge, _ := grid.NewEdgeIndex(walker, d)
			visited[edge] = struct{}{}
			line := edge.Line.Ordinal()
			seg := segmentFor(e.midX[line], edge.X)
			vc[line][seg]++
			totalCost += int64(e.GetCost(edge))
			walker, _ = walker.Move(d)
		}
		for edge := range visited {
			e.turnsPerLine[edge.Line.Ordinal()][turn] = struct{}{}
			e.turnsPerEdge[edge.Ordinal()][turn] = struct{}{}
		}
		response := uint32(totalCost)
		e.records = append(e.records, Record{Query: grid.Query{Src: src, Dest: dest}, Path: path, Response: response, Visited: visited})
		e.visitCounts = append(e.visitCounts, vc)
		e.totalCosts = append(e.totalCosts, totalCost)
		e.loss += squaredResidual(totalCost, response)
	}
}

// TestCacheSurvivesRandomAcceptedMoves fuzzes 1000 refit iterations over a
// synthetic 200-record history, validating every cache from scratch every
// 10 moves, per the cache-survival property test in the design.
func TestCacheSurvivesRandomAcceptedMoves(t *testing.T) {
	e := New(2 * time.Second)
	rng := rand.New(rand.NewPCG(99, 100))
	syntheticHistory(t, e, 200, rng)

	if err := e.ValidateCache(); err != nil {
		t.Fatalf("initial cache invalid: %v", err)
	}

	for i := 0; i < 1000; i++ {
		e.refitOnce(temperature(time.Duration(i)*time.Microsecond, 10*time.Millisecond))
		if (i+1)%10 == 0 {
			if err := e.ValidateCache(); err != nil {
				t.Fatalf("cache invalid after %d moves: %v", i+1, err)
			}
		}
	}
}
