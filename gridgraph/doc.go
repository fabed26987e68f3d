// Package gridgraph provides the dense containers used to store a value
// per edge or per cell of the 30×30 grid.
//
// GridGraph[T] holds one T per edge (NumEdges = 1740 slots), addressable
// either by grid.EdgeIndex or by the (Position, Direction) pair a search
// algorithm naturally walks. It is generic over the value type; in this
// module it holds the simulator's uint32 ground-truth edge costs. The
// estimator keeps its per-edge deltas in a plain array, not a GridGraph.
//
// PositionGrid[T] holds one T per cell (N×N slots), used for Dijkstra's
// tentative-distance and predecessor-direction arrays.
package gridgraph
