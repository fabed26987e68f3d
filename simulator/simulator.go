package simulator

import (
	"fmt"

	"github.com/katalvlaran/adaptivepath/dijkstra"
	"github.com/katalvlaran/adaptivepath/env"
	"github.com/katalvlaran/adaptivepath/grid"
	"github.com/katalvlaran/adaptivepath/gridgraph"
)

var _ env.Environment = (*Simulator)(nil)

// Simulator is a local, offline implementation of env.Environment backed
// by a hidden ground-truth cost grid. Unlike the wire protocol, it never
// performs I/O: the whole session is generated up front from a seed, and
// scoring is computed in-process.
type Simulator struct {
	turn int

	truth   *gridgraph.GridGraph[uint32]
	d       int
	double  bool
	queries [grid.NumTurns]queryParam

	visited *gridgraph.PositionGrid[int] // epoch of the turn that last touched this cell, or -1

	score        float64
	bestScore    float64
	scoreDetails []ScoreDetail
}

// FromSeed builds a Simulator whose ground-truth grid and query sequence
// are fully determined by seed: the same seed always reproduces the same
// session.
func FromSeed(seed uint64) *Simulator {
	rng := newRNG(seed)
	gen := generateGroundTruth(rng)
	queries := generateQueries(rng)

	return &Simulator{
		truth:        gen.truth,
		d:            gen.d,
		double:       gen.doubleRaw,
		queries:      queries,
		visited:      gridgraph.NewPositionGrid[int](-1),
		scoreDetails: make([]ScoreDetail, 0, grid.NumTurns),
	}
}

// NextQuery implements env.Environment.
func (s *Simulator) NextQuery() (grid.Query, bool) {
	if s.turn >= grid.NumTurns {
		return grid.Query{}, false
	}
	return s.queries[s.turn].query, true
}

// SubmitPath implements env.Environment: validates path against the
// current round's query, scores it against the hidden ground truth, and
// returns a response scaled by that round's noise factor. Any validation
// failure is fatal and surfaces as one of ErrRevisit, ErrOffGrid, or
// ErrWrongDestination — it indicates a bug in the caller, not a
// recoverable condition.
func (s *Simulator) SubmitPath(path []grid.Direction) (uint32, error) {
	qp := s.queries[s.turn]
	length, err := s.walkAndSum(qp.query, path)
	if err != nil {
		return 0, err
	}

	_, bestCost := dijkstra.Search(func(p grid.Position, d grid.Direction) uint32 {
		v, _ := s.truth.GetMove(p, d)
		return v
	}, qp.query.Src, qp.query.Dest)

	ratio := float64(bestCost) / float64(length)
	s.scoreDetails = append(s.scoreDetails, ScoreDetail{Best: bestCost, Length: length})
	s.score = s.score*0.998 + ratio
	s.bestScore = s.bestScore*0.998 + 1.0

	response := uint32(roundHalfAwayFromZero(float64(length) * qp.resFactor))

	s.turn++

	return response, nil
}

// walkAndSum replays path from query.Src, rejecting a second visit to any
// cell within the same round, a step off the grid, or a final position
// other than query.Dest, and returns the true cost of path under the
// hidden ground truth.
func (s *Simulator) walkAndSum(query grid.Query, path []grid.Direction) (uint32, error) {
	p := query.Src
	var sum uint32
	for _, d := range path {
		if s.visited.Get(p) == s.turn {
			return 0, fmt.Errorf("%w: %v revisited on turn %d", ErrRevisit, p, s.turn)
		}
		s.visited.Set(p, s.turn)

		q, ok := p.Move(d)
		if !ok {
			return 0, fmt.Errorf("%w: %v -> %v on turn %d", ErrOffGrid, p, d, s.turn)
		}
		cost, _ := s.truth.GetMove(p, d)
		sum += cost
		p = q
	}
	if s.visited.Get(p) == s.turn {
		return 0, fmt.Errorf("%w: %v revisited on turn %d", ErrRevisit, p, s.turn)
	}
	if p != query.Dest {
		return 0, fmt.Errorf("%w: ended at %v, want %v on turn %d", ErrWrongDestination, p, query.Dest, s.turn)
	}
	return sum, nil
}

func roundHalfAwayFromZero(v float64) float64 {
	if v < 0 {
		return -roundHalfAwayFromZero(-v)
	}
	return float64(int64(v + 0.5))
}

// RatioScore returns the session's aggregate score in [0, 1]: the
// exponentially-decayed average of each round's best/length ratio,
// normalized against the same decay applied to a perfect score of 1
// every round.
func (s *Simulator) RatioScore() float64 {
	if s.bestScore == 0 {
		return 0
	}
	return s.score / s.bestScore
}

// ScoreDetails returns every round's (best, length) pair completed so far.
func (s *Simulator) ScoreDetails() []ScoreDetail {
	return s.scoreDetails
}

// QueryAt returns the query and response noise factor for turn, including
// rounds not yet played — used by tryout to report per-turn width/height
// alongside that round's score detail.
func (s *Simulator) QueryAt(turn int) (grid.Query, float64) {
	qp := s.queries[turn]
	return qp.query, qp.resFactor
}

// Turn returns the number of rounds completed so far.
func (s *Simulator) Turn() int {
	return s.turn
}

// NoiseBand returns the d parameter the ground truth was generated with:
// every edge's cost is its regime base plus uniform integer noise in [-d, d].
func (s *Simulator) NoiseBand() int {
	return s.d
}

// TwoRegime reports whether each line was generated with two base-cost
// regimes (true) or a single flat one (false).
func (s *Simulator) TwoRegime() bool {
	return s.double
}
