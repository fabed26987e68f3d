package simulator

import (
	"errors"

	"github.com/katalvlaran/adaptivepath/grid"
)

// Sentinel errors returned by Simulator.SubmitPath. Any of these is fatal:
// the local environment never tolerates an illegal path, matching the
// wire protocol's no-retry contract.
var (
	// ErrRevisit indicates the path visited the same cell twice in one round.
	ErrRevisit = errors.New("simulator: path visits a cell twice in the same round")
	// ErrOffGrid indicates a step in the path left the board.
	ErrOffGrid = errors.New("simulator: path step leaves the grid")
	// ErrWrongDestination indicates the path did not end at the query's destination.
	ErrWrongDestination = errors.New("simulator: path does not end at the query destination")
)

// ScoreDetail records one round's best-possible and actually-submitted
// path lengths, the raw material behind RatioScore.
type ScoreDetail struct {
	Best   uint32
	Length uint32
}

// Ratio returns this round's score contribution: Best/Length, at most 1.
func (s ScoreDetail) Ratio() float64 {
	return float64(s.Best) / float64(s.Length)
}

// queryParam pairs a round's query with the noise factor its response
// will be scaled by.
type queryParam struct {
	query     grid.Query
	resFactor float64
}
