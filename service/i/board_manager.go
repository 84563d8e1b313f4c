package i

import (
	"github.com/beka-birhanu/vinom-pathfinder/animation"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/google/uuid"
)

// Visualization is the replayable outcome of a search on a board.
type Visualization struct {
	Visited []grid.Position   // settle order
	Path    []grid.Position   // start to finish, empty when the finish is unreachable
	Found   bool              // whether the finish was reached
	Events  []animation.Event // visited then path transitions
}

// MazeResult is the replayable outcome of maze generation on a board.
type MazeResult struct {
	Walls  []grid.Position   // newly walled cells in generation order
	Events []animation.Event // wall transitions
}

// BoardManager owns the boards and serializes every mutation of them.
type BoardManager interface {
	// NewBoard creates a board with the initial grid and returns its ID.
	NewBoard() uuid.UUID

	// Snapshot returns a copy of the board's grid.
	Snapshot(id uuid.UUID) (*grid.Grid, error)

	// ToggleWall flips one wall and returns a copy of the updated grid.
	ToggleWall(id uuid.UUID, row, col int) (*grid.Grid, error)

	// ClearWalls removes every wall and returns a copy of the updated grid.
	ClearWalls(id uuid.UUID) (*grid.Grid, error)

	// Visualize runs the shortest-path search from start to finish.
	Visualize(id uuid.UUID) (*Visualization, error)

	// GenerateMaze replaces the board's walls with a generated maze.
	GenerateMaze(id uuid.UUID) (*MazeResult, error)

	// Delete drops the board.
	Delete(id uuid.UUID) error
}

// MazeGenerator walls a grid in place and reports the walled cells in order.
type MazeGenerator interface {
	Generate(g *grid.Grid) []grid.Position
}
