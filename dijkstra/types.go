package dijkstra

import "github.com/katalvlaran/adaptivepath/grid"

// CostFunc returns the non-negative cost of moving from p in direction d.
// Callers must only invoke it for legal moves (p.Move(d) succeeds); Search
// never calls it otherwise.
//
// Both *gridgraph.GridGraph[uint32]'s GetMove (adapted to drop the ok
// return) and *estimator.Estimator's Cost satisfy this shape, which is
// the one polymorphic interface Search depends on — see design notes on
// owned vs. borrowed cost sources.
type CostFunc func(p grid.Position, d grid.Direction) uint32

const infDist = ^uint32(0)
