package simulator

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/katalvlaran/adaptivepath/grid"
	"github.com/katalvlaran/adaptivepath/gridgraph"
)

// regime generation bounds, mirroring the estimator's structural prior:
// a line's base cost is drawn from [1000+d, 9000-d], and every edge on
// that line gets the regime base plus uniform integer noise in [-d, d].
const (
	minD = 100
	maxD = 2000

	minQueryDistance = 10
)

// newRNG derives a ChaCha8 source from a 64-bit seed so that a given seed
// always reproduces the same ground-truth grid and query sequence.
// ChaCha8 is math/rand/v2's stdlib equivalent of the original generator's
// ChaCha20-based stream cipher RNG; bit-for-bit reproduction across the
// two is not a goal (see design notes on non-bit-exact RNG), only
// seed-determinism within this package.
func newRNG(seed uint64) *rand.Rand {
	var seedBytes [32]byte
	binary.LittleEndian.PutUint64(seedBytes[:8], seed)
	return rand.New(rand.NewChaCha8(seedBytes))
}

// generated bundles the ground-truth cost grid together with the regime
// parameters that produced it, kept around only for diagnostic display
// (tryout's per-seed summary).
type generated struct {
	d         int
	doubleRaw bool
	truth     *gridgraph.GridGraph[uint32]
}

// generateGroundTruth builds the hidden cost grid per the structural
// prior: each of the 2N lines is assigned one or two regimes (drawn
// uniformly from [1000+d, 9000-d]) separated by at most one split point,
// and every edge's cost is its regime's base plus uniform integer noise
// in [-d, d].
func generateGroundTruth(rng *rand.Rand) generated {
	d := minD + rng.IntN(maxD-minD+1)
	m := 1 + rng.IntN(2) // 1 or 2 regimes

	g := gridgraph.New[uint32]()

	genLine := func() [2]uint32 {
		var base [2]uint32
		for p := 0; p < m; p++ {
			base[p] = uint32((1000 + d) + rng.IntN((9001-d)-(1000+d)))
		}
		if m == 1 {
			base[1] = base[0]
		}
		return base
	}

	splitFor := func() byte {
		if m == 2 {
			return byte(1 + rng.IntN(grid.N-2))
		}
		return grid.N - 1
	}

	noise := func() int32 {
		return int32(rng.IntN(2*d+1)) - int32(d)
	}

	// Horizontal lines (rows): h[i][j] is the edge between (i,j) and (i,j+1).
	for i := byte(0); i < grid.N; i++ {
		base := genLine()
		mid := splitFor()
		for j := byte(0); j < grid.N-1; j++ {
			seg := 0
			if j >= mid {
				seg = 1
			}
			cost := int64(base[seg]) + int64(noise())
			if cost < 0 {
				cost = 0
			}
			edge := grid.EdgeIndex{Line: grid.LineIndex{Axis: grid.Horizontal, Index: i}, X: j}
			g.Set(edge, uint32(cost))
		}
	}

	// Vertical lines (columns): v[i][j] is the edge between (i,j) and (i+1,j).
	for j := byte(0); j < grid.N; j++ {
		base := genLine()
		mid := splitFor()
		for i := byte(0); i < grid.N-1; i++ {
			seg := 0
			if i >= mid {
				seg = 1
			}
			cost := int64(base[seg]) + int64(noise())
			if cost < 0 {
				cost = 0
			}
			edge := grid.EdgeIndex{Line: grid.LineIndex{Axis: grid.Vertical, Index: j}, X: i}
			g.Set(edge, uint32(cost))
		}
	}

	return generated{d: d, doubleRaw: m == 2, truth: g}
}

// generateQueries draws NumTurns (src, dest) pairs at least
// minQueryDistance apart by Manhattan distance, each paired with a
// uniform response noise factor in [0.9, 1.1).
func generateQueries(rng *rand.Rand) [grid.NumTurns]queryParam {
	var qs [grid.NumTurns]queryParam
	randPos := func() grid.Position {
		return grid.NewPosition(byte(rng.IntN(grid.N)), byte(rng.IntN(grid.N)))
	}
	for i := range qs {
		var src, dest grid.Position
		for {
			src, dest = randPos(), randPos()
			if src.ManhattanDistance(dest) >= minQueryDistance {
				break
			}
		}
		qs[i] = queryParam{
			query:     grid.Query{Src: src, Dest: dest},
			resFactor: 0.9 + rng.Float64()*0.2,
		}
	}
	return qs
}
