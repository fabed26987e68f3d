package solver_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adaptivepath/estimator"
	"github.com/katalvlaran/adaptivepath/grid"
	"github.com/katalvlaran/adaptivepath/simulator"
	"github.com/katalvlaran/adaptivepath/solver"
)

// fixedEnvironment serves a short, fixed sequence of queries and records
// whatever paths and responses it is given, without any validation —
// used to test Run's control flow in isolation from a real collaborator.
type fixedEnvironment struct {
	queries  []grid.Query
	turn     int
	failAt   int // -1 disables the injected failure
	gotPaths [][]grid.Direction
}

func (f *fixedEnvironment) NextQuery() (grid.Query, bool) {
	if f.turn >= len(f.queries) {
		return grid.Query{}, false
	}
	return f.queries[f.turn], true
}

func (f *fixedEnvironment) SubmitPath(path []grid.Direction) (uint32, error) {
	if f.turn == f.failAt {
		return 0, errors.New("injected failure")
	}
	f.gotPaths = append(f.gotPaths, path)
	var length uint32
	for range path {
		length += 5000
	}
	f.turn++
	return length, nil
}

func TestRunWalksEveryQueryAndStops(t *testing.T) {
	env := &fixedEnvironment{
		queries: []grid.Query{
			{Src: grid.Position{R: 0, C: 0}, Dest: grid.Position{R: 0, C: 5}},
			{Src: grid.Position{R: 5, C: 5}, Dest: grid.Position{R: 10, C: 5}},
		},
		failAt: -1,
	}
	est := estimator.New(2 * time.Second)

	err := solver.Run(env, est)
	require.NoError(t, err)
	require.Len(t, env.gotPaths, 2)
	require.Len(t, env.gotPaths[0], 5) // Manhattan distance 5
	require.Len(t, env.gotPaths[1], 5)
}

func TestRunPropagatesEnvironmentFailure(t *testing.T) {
	env := &fixedEnvironment{
		queries: []grid.Query{
			{Src: grid.Position{R: 0, C: 0}, Dest: grid.Position{R: 0, C: 5}},
		},
		failAt: 0,
	}
	est := estimator.New(2 * time.Second)

	err := solver.Run(env, est)
	require.Error(t, err)
}

func TestRunAgainstSimulatorCompletesFullSession(t *testing.T) {
	sim := simulator.FromSeed(11)
	est := estimator.New(10 * time.Millisecond)

	err := solver.Run(sim, est)
	require.NoError(t, err)
	require.Equal(t, grid.NumTurns, sim.Turn())

	r := sim.RatioScore()
	require.GreaterOrEqual(t, r, 0.0)
	require.LessOrEqual(t, r, 1.0)
}
