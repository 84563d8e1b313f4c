package grid

import "math"

// Infinity marks a node the search has not reached.
const Infinity = math.MaxInt

// Position is a (row, col) coordinate on the grid.
type Position struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Node represents a single cell of the grid.
// Distance and IsVisited belong to the most recent search run and are
// re-initialised by every run.
type Node struct {
	Row       int  // Row index, fixed at creation
	Col       int  // Column index, fixed at creation
	IsStart   bool // IsStart marks the search source.
	IsFinish  bool // IsFinish marks the search target.
	IsWall    bool // IsWall makes the node impassable.
	Distance  int  // Distance from the start in the last search, Infinity if unreached.
	IsVisited bool // IsVisited is set once the search finalized Distance.
}

// Pos returns the node's coordinate.
func (n *Node) Pos() Position {
	return Position{Row: n.Row, Col: n.Col}
}

func (n *Node) resetSearch() {
	n.Distance = Infinity
	n.IsVisited = false
}
