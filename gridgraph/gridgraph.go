package gridgraph

import "github.com/katalvlaran/adaptivepath/grid"

// GridGraph is a dense mapping from grid.EdgeIndex to a value of type T.
// The zero GridGraph has every edge set to the zero value of T; use
// NewFilled when a non-zero default (e.g. "infinity") is required.
type GridGraph[T any] struct {
	edges [grid.NumEdges]T
}

// New returns a GridGraph with every edge at the zero value of T.
func New[T any]() *GridGraph[T] {
	return &GridGraph[T]{}
}

// NewFilled returns a GridGraph with every edge initialized to fill.
func NewFilled[T any](fill T) *GridGraph[T] {
	g := &GridGraph[T]{}
	for i := range g.edges {
		g.edges[i] = fill
	}
	return g
}

// Get returns the value stored at e.
func (g *GridGraph[T]) Get(e grid.EdgeIndex) T {
	return g.edges[e.Ordinal()]
}

// Set stores v at e.
func (g *GridGraph[T]) Set(e grid.EdgeIndex, v T) {
	g.edges[e.Ordinal()] = v
}

// GetMove returns the value stored at the edge used by moving from p in
// direction d, and false if that move is illegal.
func (g *GridGraph[T]) GetMove(p grid.Position, d grid.Direction) (T, bool) {
	e, ok := grid.NewEdgeIndex(p, d)
	if !ok {
		var zero T
		return zero, false
	}
	return g.Get(e), true
}

// SetMove stores v at the edge used by moving from p in direction d. It
// is a no-op if that move is illegal.
func (g *GridGraph[T]) SetMove(p grid.Position, d grid.Direction, v T) {
	e, ok := grid.NewEdgeIndex(p, d)
	if !ok {
		return
	}
	g.Set(e, v)
}

// PositionGrid is a dense N×N mapping from grid.Position to a value of
// type T, used for per-cell algorithm state such as Dijkstra's tentative
// distances and predecessor directions.
type PositionGrid[T any] struct {
	cells [grid.N][grid.N]T
}

// NewPositionGrid returns a PositionGrid with every cell initialized to fill.
func NewPositionGrid[T any](fill T) *PositionGrid[T] {
	pg := &PositionGrid[T]{}
	for r := range pg.cells {
		for c := range pg.cells[r] {
			pg.cells[r][c] = fill
		}
	}
	return pg
}

// Get returns the value stored at p.
func (pg *PositionGrid[T]) Get(p grid.Position) T {
	return pg.cells[p.R][p.C]
}

// Set stores v at p.
func (pg *PositionGrid[T]) Set(p grid.Position, v T) {
	pg.cells[p.R][p.C] = v
}
