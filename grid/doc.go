// Package grid defines the fixed 30×30 four-connected grid that the
// adaptive shortest-path contest is played on: positions, directions,
// and the line/edge indexing scheme shared by every other package.
//
// The grid has no diagonal movement and no wraparound. Moving off an
// edge of the board yields a zero value and false rather than panicking,
// mirroring the way the original Rust solver used Option<Pos>.
//
// Edges are addressed two ways:
//
//   - By (Position, Direction): the natural way a search algorithm visits them.
//   - By EdgeIndex (LineIndex, X): a structural address used by the estimator,
//     which needs to group edges by the row or column they belong to.
//
// NewEdgeIndex converts between the two; the conversion is only defined
// for legal moves.
package grid

// N is the side length of the grid.
const N = 30

// NumTurns is the number of rounds in a session.
const NumTurns = 1000

// NumEdges is the total number of undirected edges in the grid: 2·N·(N-1).
const NumEdges = 2 * N * (N - 1)

// NumLines is the number of rows plus columns: 2·N.
const NumLines = 2 * N
