// Package dijkstra implements shortest-path search over the fixed 30×30
// grid: the single inner loop that both the online driver (searching
// against the live cost estimator) and the local simulator (searching
// against the hidden ground-truth grid) share.
//
// Complexity:
//
//	- Time:  O(E log V) where V = N² cells, E = NumEdges.
//	- Space: O(V) for the distance and predecessor grids, O(E) worst
//	  case for the lazy-decrease-key heap.
//
// Search takes any CostFunc — a closure over a gridgraph.GridGraph[uint32]'s
// GetMove and an estimator's Cost method value both satisfy it — so the
// algorithm does not know or care whether costs come from ground truth or
// from a fitted model.
//
// Direction iteration order is fixed (grid.Directions: Up, Left, Down,
// Right) so that results do not depend on map iteration order; when
// multiple frontier states tie on distance, which one the heap pops first
// is unspecified and tests must not depend on it.
package dijkstra
