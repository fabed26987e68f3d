package gridgraph

import (
	"testing"

	"github.com/katalvlaran/adaptivepath/grid"
)

func TestGetSetRoundTrip(t *testing.T) {
	g := New[uint32]()
	e := grid.EdgeIndex{Line: grid.LineIndex{Axis: grid.Horizontal, Index: 3}, X: 7}
	g.Set(e, 1234)
	if got := g.Get(e); got != 1234 {
		t.Errorf("Get = %d, want 1234", got)
	}
}

func TestNewFilled(t *testing.T) {
	g := NewFilled[uint32](9000)
	for r := byte(0); r < grid.N; r++ {
		for c := byte(0); c < grid.N; c++ {
			for _, d := range grid.Directions {
				v, ok := g.GetMove(grid.Position{R: r, C: c}, d)
				if !ok {
					continue
				}
				if v != 9000 {
					t.Fatalf("GetMove(%d,%d,%v) = %d, want 9000", r, c, d, v)
				}
			}
		}
	}
}

func TestGetMoveSetMoveAgree(t *testing.T) {
	g := New[int]()
	p := grid.Position{R: 5, C: 5}
	g.SetMove(p, grid.Right, 42)
	v, ok := g.GetMove(p, grid.Right)
	if !ok || v != 42 {
		t.Fatalf("GetMove after SetMove = %d,%v; want 42,true", v, ok)
	}
	e, _ := grid.NewEdgeIndex(p, grid.Right)
	if g.Get(e) != 42 {
		t.Errorf("Get(e) = %d, want 42", g.Get(e))
	}
}

func TestSetMoveOffGridNoop(t *testing.T) {
	g := New[int]()
	p := grid.Position{R: 0, C: 0}
	g.SetMove(p, grid.Up, 99) // illegal move, should not panic or affect anything
	if v, ok := g.GetMove(p, grid.Up); ok || v != 0 {
		t.Fatalf("GetMove(illegal) = %d,%v; want 0,false", v, ok)
	}
}

func TestPositionGrid(t *testing.T) {
	pg := NewPositionGrid[int](-1)
	pg.Set(grid.Position{R: 1, C: 2}, 5)
	if got := pg.Get(grid.Position{R: 1, C: 2}); got != 5 {
		t.Errorf("Get = %d, want 5", got)
	}
	if got := pg.Get(grid.Position{R: 0, C: 0}); got != -1 {
		t.Errorf("Get(unset) = %d, want -1", got)
	}
}
