package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/adaptivepath/grid"
	"github.com/katalvlaran/adaptivepath/gridgraph"
)

// Search computes the shortest path from src to dest under cost, and
// returns the direction sequence to walk it plus its total cost. If
// src == dest the returned path is empty and the cost is zero.
func Search(cost CostFunc, src, dest grid.Position) ([]grid.Direction, uint32) {
	if src == dest {
		return nil, 0
	}

	dist := gridgraph.NewPositionGrid[uint32](infDist)
	prev := gridgraph.NewPositionGrid[grid.Direction](grid.Up)
	finalized := gridgraph.NewPositionGrid[bool](false)

	dist.Set(src, 0)
	pq := make(nodePQ, 0, grid.N*grid.N)
	heap.Init(&pq)
	heap.Push(&pq, &node{pos: src, dist: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*node)
		p, d := cur.pos, cur.dist

		if finalized.Get(p) {
			continue
		}
		if d != dist.Get(p) {
			continue // stale lazy-decrease-key entry
		}
		finalized.Set(p, true)

		if p == dest {
			break
		}

		for _, dir := range grid.Directions {
			q, ok := p.Move(dir)
			if !ok || finalized.Get(q) {
				continue
			}
			nd := d + cost(p, dir)
			if nd < dist.Get(q) {
				dist.Set(q, nd)
				prev.Set(q, dir)
				heap.Push(&pq, &node{pos: q, dist: nd})
			}
		}
	}

	return reconstructPath(prev, src, dest), dist.Get(dest)
}

func reconstructPath(prev *gridgraph.PositionGrid[grid.Direction], src, dest grid.Position) []grid.Direction {
	var reversed []grid.Direction
	p := dest
	for p != src {
		d := prev.Get(p)
		reversed = append(reversed, d)
		prior, ok := p.Move(d.Rev())
		if !ok {
			panic("dijkstra: corrupt predecessor chain")
		}
		p = prior
	}
	path := make([]grid.Direction, len(reversed))
	for i, d := range reversed {
		path[len(reversed)-1-i] = d
	}
	return path
}

// node is one entry in the search frontier's priority queue.
type node struct {
	pos  grid.Position
	dist uint32
}

// nodePQ is a min-heap of *node ordered by ascending dist, using the
// lazy-decrease-key pattern: a cheaper distance to an already-queued
// position is pushed as a new entry rather than mutating the old one,
// and stale entries are discarded on pop (see the dist.Get(p) check
// above).
type nodePQ []*node

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
