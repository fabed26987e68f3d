package estimator

import (
	"errors"
	"time"

	"github.com/katalvlaran/adaptivepath/grid"
)

// Sentinel errors returned by Estimator.
var (
	// ErrPathNotAtDest indicates a record's path did not end at the
	// query's destination — the caller violated InsertRecord's
	// precondition that path be a legal simple path from src to dest.
	ErrPathNotAtDest = errors.New("estimator: path does not end at query destination")

	// ErrPathLeavesGrid indicates a record's path stepped off the board.
	ErrPathLeavesGrid = errors.New("estimator: path leaves the grid")

	// ErrCacheInconsistent is returned by ValidateCache when a cached
	// quantity disagrees with a ground-truth recomputation.
	ErrCacheInconsistent = errors.New("estimator: cache inconsistent with parameters")
)

// Cost-model domain bounds, from the structural prior: a line's base cost
// lies in [minLineBase, maxLineBase], step-aligned to step; an edge's
// perturbation lies in [-maxEdgeDelta, maxEdgeDelta], same step.
const (
	minLineBase  = 1000
	maxLineBase  = 9000
	maxEdgeDelta = 300
	step         = 100

	startTemp = 1e5
	endTemp   = 1e2
)

// Record is the solver's memory of one completed round.
type Record struct {
	Query    grid.Query
	Path     []grid.Direction
	Response uint32
	Visited  map[grid.EdgeIndex]struct{}
}

// visitBreakdown counts, for one past round, how many edges of each
// segment of each line its path used.
type visitBreakdown [grid.NumLines][2]int

// Estimator holds the current cost-model parameters and every cache
// needed to refit them incrementally. The zero value is not usable;
// construct with New.
type Estimator struct {
	// TimeLimit is the session-level wall-clock budget InsertRecord divides
	// evenly (then trims to 90%) across the NumTurns rounds before each
	// Refit call.
	TimeLimit time.Duration

	lineBase  [grid.NumLines][2]uint32
	midX      [grid.NumLines]byte
	edgeDelta [grid.NumEdges]int32

	records     []Record
	visitCounts []visitBreakdown
	totalCosts  []int64

	turnsPerLine [grid.NumLines]map[int]struct{}
	turnsPerEdge [grid.NumEdges]map[int]struct{}

	loss int64
}

// New returns an Estimator seeded with a flat initial guess: every line's
// base cost at the midpoint of its domain, split points at the line's
// midpoint, and zero edge perturbation. timeLimit is the session's total
// wall-clock budget (e.g. 2s), divided across NumTurns rounds by
// InsertRecord for its Refit calls.
func New(timeLimit time.Duration) *Estimator {
	e := &Estimator{TimeLimit: timeLimit}
	for i := range e.lineBase {
		e.lineBase[i] = [2]uint32{5000, 5000}
		e.midX[i] = grid.N / 2
		e.turnsPerLine[i] = make(map[int]struct{})
	}
	for i := range e.turnsPerEdge {
		e.turnsPerEdge[i] = make(map[int]struct{})
	}
	return e
}
