// Package pathfinder runs a uniform-cost shortest-path search over a grid.
//
// Every edge between orthogonally adjacent, non-wall cells costs 1. Nodes are
// settled in order of increasing distance from the start using a min-heap;
// among equal distances the node pushed first is settled first. The search
// stops as soon as the finish is settled, or when nothing reachable is left.
//
// Each call re-initialises the transient Distance/IsVisited fields of every
// node, so repeated searches on the same grid never see stale state.
// Predecessors are kept in a per-run index table on the Result rather than
// on the nodes.
//
// Complexity:
//
//   - Time:  O(V log V), each cell is pushed at most once per strict improvement (≤ 4 per cell).
//   - Space: O(V)
package pathfinder

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

const noPredecessor = -1

// ErrNilGrid indicates a nil grid was passed to ShortestPath.
var ErrNilGrid = errors.New("pathfinder: grid is nil")

// Result is the outcome of one search run.
type Result struct {
	// Visited lists the settled (non-wall) nodes in the order they were settled.
	Visited []grid.Position
	// Found reports whether the finish was settled.
	Found bool

	g      *grid.Grid
	finish grid.Position
	dist   []int
	prev   []int
}

// ShortestPath searches g from start to finish and returns the visitation order.
// An unreachable finish is not an error: the partial visitation order is returned
// with Found set to false.
func ShortestPath(g *grid.Grid, start, finish grid.Position) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("pathfinder: start %v: %w", start, grid.ErrOutOfBounds)
	}
	if !g.InBounds(finish.Row, finish.Col) {
		return nil, fmt.Errorf("pathfinder: finish %v: %w", finish, grid.ErrOutOfBounds)
	}

	r := &runner{
		g:      g,
		start:  g.Index(start),
		finish: g.Index(finish),
		dist:   make([]int, g.Size()),
		prev:   make([]int, g.Size()),
		pq:     make(nodePQ, 0, g.Size()),
	}
	r.init()
	r.process()

	return &Result{
		Visited: r.visited,
		Found:   r.found,
		g:       g,
		finish:  finish,
		dist:    r.dist,
		prev:    r.prev,
	}, nil
}

// Search runs ShortestPath between the grid's own start and finish cells.
func Search(g *grid.Grid) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return ShortestPath(g, g.StartPos(), g.FinishPos())
}

// Distance returns the settled distance of pos, or grid.Infinity if pos was not reached.
func (res *Result) Distance(pos grid.Position) int {
	if !res.g.InBounds(pos.Row, pos.Col) {
		return grid.Infinity
	}
	return res.dist[res.g.Index(pos)]
}

// ReconstructPath walks predecessor links back from target and returns the
// positions from the first node without a predecessor up to target.
// With no path to target the result is just [target]; use Found or Path to
// tell "no path" apart from a real one.
func (res *Result) ReconstructPath(target grid.Position) []grid.Position {
	if !res.g.InBounds(target.Row, target.Col) {
		return nil
	}

	var reversed []grid.Position
	for idx := res.g.Index(target); idx != noPredecessor; idx = res.prev[idx] {
		reversed = append(reversed, res.g.NodeAt(idx).Pos())
	}

	path := make([]grid.Position, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}

// Path returns the start-to-finish shortest path, or nil when the finish was not reached.
func (res *Result) Path() []grid.Position {
	if !res.Found {
		return nil
	}
	return res.ReconstructPath(res.finish)
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *grid.Grid
	start   int             // row-major index of the start node
	finish  int             // row-major index of the finish node
	dist    []int           // index → best known distance
	prev    []int           // index → predecessor index, noPredecessor if none
	pq      nodePQ          // min-heap keyed by (dist, seq)
	seq     int             // insertion counter for tie-breaking
	visited []grid.Position // settle order
	found   bool
}

// init resets node state, predecessors, and seeds the heap with the start node.
func (r *runner) init() {
	r.g.ResetSearch()
	for i := range r.dist {
		r.dist[i] = grid.Infinity
		r.prev[i] = noPredecessor
	}

	r.dist[r.start] = 0
	r.g.NodeAt(r.start).Distance = 0

	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// process settles nodes in (distance, insertion) order until the finish is
// settled or the heap is exhausted.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		node := r.g.NodeAt(item.idx)

		// Stale entry from a lazy decrease-key.
		if node.IsVisited || item.dist != r.dist[item.idx] {
			continue
		}

		// Walls close their branch: never expanded, never recorded.
		if node.IsWall {
			continue
		}

		if item.dist == grid.Infinity {
			return
		}

		node.IsVisited = true
		r.visited = append(r.visited, node.Pos())

		if item.idx == r.finish {
			r.found = true
			return
		}

		r.relax(item.idx)
	}
}

// relax offers dist[u]+1 to every open, unsettled neighbour of u.
func (r *runner) relax(u int) {
	candidate := r.dist[u] + 1
	for _, pos := range r.g.Neighbors(r.g.NodeAt(u).Pos()) {
		v := r.g.Index(pos)
		neighbor := r.g.NodeAt(v)
		if neighbor.IsWall || neighbor.IsVisited {
			continue
		}
		if candidate >= r.dist[v] {
			continue
		}

		r.dist[v] = candidate
		r.prev[v] = u
		neighbor.Distance = candidate
		r.push(v, candidate)
	}
}

func (r *runner) push(idx, dist int) {
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem is a heap entry for a grid index at a given distance.
type nodeItem struct {
	idx  int // row-major grid index
	dist int // distance at push time
	seq  int // push order
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
