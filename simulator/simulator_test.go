package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adaptivepath/grid"
	"github.com/katalvlaran/adaptivepath/simulator"
)

// walkPath is a tiny local Dijkstra-free path walker used to compute a
// legal s-t path a test can submit: it always walks straight along rows
// then columns, which is legal (if not shortest) on a 4-connected grid.
func walkPath(src, dest grid.Position) []grid.Direction {
	var path []grid.Direction
	for src.C != dest.C {
		if src.C < dest.C {
			path = append(path, grid.Right)
			src.C++
		} else {
			path = append(path, grid.Left)
			src.C--
		}
	}
	for src.R != dest.R {
		if src.R < dest.R {
			path = append(path, grid.Down)
			src.R++
		} else {
			path = append(path, grid.Up)
			src.R--
		}
	}
	return path
}

func TestFromSeedIsDeterministic(t *testing.T) {
	a := simulator.FromSeed(42)
	b := simulator.FromSeed(42)

	qa, ra := a.QueryAt(0)
	qb, rb := b.QueryAt(0)
	require.Equal(t, qa, qb)
	require.Equal(t, ra, rb)
	require.Equal(t, a.NoiseBand(), b.NoiseBand())
	require.Equal(t, a.TwoRegime(), b.TwoRegime())
}

func TestSubmitPathRejectsRevisit(t *testing.T) {
	s := simulator.FromSeed(7)
	q, _ := s.QueryAt(0)
	straight := walkPath(q.Src, q.Dest)
	// Prepend a there-and-back detour that revisits the first cell.
	bad := append([]grid.Direction{straight[0], straight[0].Rev()}, straight...)
	_, err := s.SubmitPath(bad)
	require.ErrorIs(t, err, simulator.ErrRevisit)
}

func TestSubmitPathRejectsWrongDestination(t *testing.T) {
	s := simulator.FromSeed(7)
	q, _ := s.QueryAt(0)
	path := walkPath(q.Src, q.Dest)
	_, err := s.SubmitPath(path[:len(path)-1]) // stops one short
	require.ErrorIs(t, err, simulator.ErrWrongDestination)
}

func TestSubmitPathAcceptsLegalPathAndAdvancesTurn(t *testing.T) {
	s := simulator.FromSeed(7)
	require.Equal(t, 0, s.Turn())

	q, _ := s.QueryAt(0)
	path := walkPath(q.Src, q.Dest)
	resp, err := s.SubmitPath(path)
	require.NoError(t, err)
	require.Greater(t, resp, uint32(0))
	require.Equal(t, 1, s.Turn())

	details := s.ScoreDetails()
	require.Len(t, details, 1)
	require.LessOrEqual(t, details[0].Best, details[0].Length)
	require.LessOrEqual(t, details[0].Ratio(), 1.0)
}

func TestRatioScoreInUnitRangeAfterFirstRound(t *testing.T) {
	s := simulator.FromSeed(3)
	// Submitting true-shortest paths for a handful of rounds should drive
	// the ratio score close to (but not necessarily exactly) 1, since the
	// straight-line walker above is not guaranteed optimal; instead just
	// check the score stays within its documented [0,1] range and moves
	// off zero after the first round.
	q, _ := s.QueryAt(0)
	path := walkPath(q.Src, q.Dest)
	_, err := s.SubmitPath(path)
	require.NoError(t, err)

	r := s.RatioScore()
	require.GreaterOrEqual(t, r, 0.0)
	require.LessOrEqual(t, r, 1.0)
	require.Greater(t, r, 0.0)
}

func TestNextQueryEndsAfterNumTurns(t *testing.T) {
	s := simulator.FromSeed(1)
	for i := 0; i < grid.NumTurns; i++ {
		q, ok := s.NextQuery()
		require.True(t, ok, "turn %d", i)
		path := walkPath(q.Src, q.Dest)
		_, err := s.SubmitPath(path)
		require.NoError(t, err)
	}
	_, ok := s.NextQuery()
	require.False(t, ok)
}
