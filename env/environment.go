package env

import "github.com/katalvlaran/adaptivepath/grid"

// Environment is the collaborator contract the driver loop runs against.
type Environment interface {
	// NextQuery returns the next (src, dest) pair, or false once the
	// session has ended after at most grid.NumTurns queries.
	NextQuery() (grid.Query, bool)

	// SubmitPath hands over the path chosen for the current query and
	// returns the environment's opaque response value. Any error is
	// fatal — there is no retry.
	SubmitPath(path []grid.Direction) (uint32, error)
}
