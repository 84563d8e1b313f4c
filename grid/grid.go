/*
Package grid models the rectangular board the pathfinder runs on.

A Grid is a row-major arrangement of Nodes with exactly one start and one
finish cell. Walls are edited either through ToggleWall, which returns an
independent copy, or in place through SetWall by the owner of the grid
(the maze generator works this way).

The package also carries the fixed board configuration and an ASCII
rendering used by terminal consumers and the text endpoint.
*/
package grid

import (
	"fmt"
	"strings"
)

// Fixed board configuration.
const (
	DefaultRows      = 20
	DefaultCols      = 50
	DefaultStartRow  = 10
	DefaultStartCol  = 15
	DefaultFinishRow = 10
	DefaultFinishCol = 35
)

// Direction is a unit step between orthogonally adjacent cells.
type Direction struct {
	Name  string
	Delta Position
}

// Directions lists the 4-neighbourhood in expansion order: up, down, left, right.
var Directions = []Direction{
	{Name: "North", Delta: Position{Row: -1, Col: 0}},
	{Name: "South", Delta: Position{Row: 1, Col: 0}},
	{Name: "West", Delta: Position{Row: 0, Col: -1}},
	{Name: "East", Delta: Position{Row: 0, Col: 1}},
}

// Grid is a fixed-size 2D board of nodes.
type Grid struct {
	rows   int
	cols   int
	start  Position
	finish Position
	nodes  []Node // row-major, len == rows*cols
}

// New builds a rows×cols grid with no walls and fresh search state.
func New(rows, cols int, start, finish Position) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	g := &Grid{
		rows:   rows,
		cols:   cols,
		start:  start,
		finish: finish,
		nodes:  make([]Node, rows*cols),
	}

	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("start %v: %w", start, ErrOutOfBounds)
	}
	if !g.InBounds(finish.Row, finish.Col) {
		return nil, fmt.Errorf("finish %v: %w", finish, ErrOutOfBounds)
	}
	if start == finish {
		return nil, ErrSameEndpoints
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.nodes[row*cols+col] = Node{
				Row:       row,
				Col:       col,
				IsStart:   row == start.Row && col == start.Col,
				IsFinish:  row == finish.Row && col == finish.Col,
				Distance:  Infinity,
				IsVisited: false,
			}
		}
	}
	return g, nil
}

// CreateInitialGrid returns the fixed 20×50 board with start (10,15) and finish (10,35).
func CreateInitialGrid() *Grid {
	g, err := New(
		DefaultRows,
		DefaultCols,
		Position{Row: DefaultStartRow, Col: DefaultStartCol},
		Position{Row: DefaultFinishRow, Col: DefaultFinishCol},
	)
	if err != nil {
		panic(err) // constants are valid
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of nodes.
func (g *Grid) Size() int { return len(g.nodes) }

// StartPos returns the start coordinate.
func (g *Grid) StartPos() Position { return g.start }

// FinishPos returns the finish coordinate.
func (g *Grid) FinishPos() Position { return g.finish }

// Start returns the start node.
func (g *Grid) Start() *Node { return &g.nodes[g.index(g.start)] }

// Finish returns the finish node.
func (g *Grid) Finish() *Node { return &g.nodes[g.index(g.finish)] }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Node returns the node at (row, col).
func (g *Grid) Node(row, col int) (*Node, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfBounds)
	}
	return &g.nodes[row*g.cols+col], nil
}

// NodeAt returns the node at the row-major index idx. idx must be in [0, Size()).
func (g *Grid) NodeAt(idx int) *Node { return &g.nodes[idx] }

// Index returns the row-major index of pos. pos must be in bounds.
func (g *Grid) Index(pos Position) int { return g.index(pos) }

func (g *Grid) index(pos Position) int { return pos.Row*g.cols + pos.Col }

// Neighbors returns the in-bounds orthogonal neighbours of pos in Directions order.
func (g *Grid) Neighbors(pos Position) []Position {
	result := make([]Position, 0, len(Directions))
	for _, dir := range Directions {
		n := Position{Row: pos.Row + dir.Delta.Row, Col: pos.Col + dir.Delta.Col}
		if g.InBounds(n.Row, n.Col) {
			result = append(result, n)
		}
	}
	return result
}

// Clone returns a deep copy; no node storage is shared with g.
func (g *Grid) Clone() *Grid {
	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)
	return &Grid{
		rows:   g.rows,
		cols:   g.cols,
		start:  g.start,
		finish: g.finish,
		nodes:  nodes,
	}
}

// ToggleWall returns a copy of g in which the wall flag at (row, col) is inverted.
// g itself is left untouched. Toggling the start or finish cell is allowed.
func (g *Grid) ToggleWall(row, col int) (*Grid, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("toggle (%d,%d): %w", row, col, ErrOutOfBounds)
	}

	next := g.Clone()
	n := &next.nodes[row*next.cols+col]
	n.IsWall = !n.IsWall
	return next, nil
}

// SetWall sets the wall flag at (row, col) in place.
func (g *Grid) SetWall(row, col int, wall bool) error {
	n, err := g.Node(row, col)
	if err != nil {
		return err
	}
	n.IsWall = wall
	return nil
}

// ClearWalls removes every wall in place.
func (g *Grid) ClearWalls() {
	for i := range g.nodes {
		g.nodes[i].IsWall = false
	}
}

// ResetSearch puts every node back to Distance=Infinity, IsVisited=false.
func (g *Grid) ResetSearch() {
	for i := range g.nodes {
		g.nodes[i].resetSearch()
	}
}

// Walls returns the wall positions in row-major order.
func (g *Grid) Walls() []Position {
	var walls []Position
	for i := range g.nodes {
		if g.nodes[i].IsWall {
			walls = append(walls, g.nodes[i].Pos())
		}
	}
	return walls
}

// String renders the grid as ASCII: S start, F finish, # wall, . open.
func (g *Grid) String() string {
	return g.Render(nil, nil)
}

// Render draws the grid with a search overlay: o visited, * path.
// The path overlay wins over visited; start and finish are always shown.
func (g *Grid) Render(visited, path []Position) string {
	overlay := make(map[Position]byte, len(visited)+len(path))
	for _, p := range visited {
		overlay[p] = 'o'
	}
	for _, p := range path {
		overlay[p] = '*'
	}

	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			n := &g.nodes[row*g.cols+col]
			switch {
			case n.IsStart:
				b.WriteByte('S')
			case n.IsFinish:
				b.WriteByte('F')
			case n.IsWall:
				b.WriteByte('#')
			default:
				if c, ok := overlay[n.Pos()]; ok {
					b.WriteByte(c)
				} else {
					b.WriteByte('.')
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
