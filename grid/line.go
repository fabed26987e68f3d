package grid

// Axis distinguishes rows (Horizontal, edges run left-right) from
// columns (Vertical, edges run up-down).
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// LineIndex identifies one of the 2N rows or columns of the grid.
type LineIndex struct {
	Axis  Axis
	Index byte
}

// Ordinal maps a LineIndex onto a dense [0, NumLines) slot: all N
// horizontal lines first (0..N-1), then all N vertical lines (N..2N-1).
// This is the order gridgraph and estimator use for flat arrays, and the
// order Lines returns.
func (l LineIndex) Ordinal() int {
	if l.Axis == Horizontal {
		return int(l.Index)
	}
	return N + int(l.Index)
}

// Lines returns all 2N lines in deterministic Ordinal order.
func Lines() [NumLines]LineIndex {
	var ls [NumLines]LineIndex
	for i := byte(0); i < N; i++ {
		ls[i] = LineIndex{Axis: Horizontal, Index: i}
		ls[N+int(i)] = LineIndex{Axis: Vertical, Index: i}
	}
	return ls
}
