package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-pathfinder/animation"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinder"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrNilMaze       = errors.New("maze generator is required")
	ErrNilLogger     = errors.New("logger is required")
)

// BoardManager keeps one grid per board and is the only mutator of those grids.
type BoardManager struct {
	boards      map[uuid.UUID]*grid.Grid
	gridFactory func() *grid.Grid
	maze        i.MazeGenerator
	logger      i.Logger
	sync.RWMutex
}

// Config holds the dependencies of a BoardManager.
type Config struct {
	GridFactory func() *grid.Grid // defaults to grid.CreateInitialGrid
	Maze        i.MazeGenerator
	Logger      i.Logger
}

var _ i.BoardManager = &BoardManager{}

// NewBoardManager creates a BoardManager with no boards.
func NewBoardManager(c *Config) (*BoardManager, error) {
	if c.Maze == nil {
		return nil, ErrNilMaze
	}
	if c.Logger == nil {
		return nil, ErrNilLogger
	}

	factory := c.GridFactory
	if factory == nil {
		factory = grid.CreateInitialGrid
	}

	return &BoardManager{
		boards:      make(map[uuid.UUID]*grid.Grid),
		gridFactory: factory,
		maze:        c.Maze,
		logger:      c.Logger,
	}, nil
}

// NewBoard implements i.BoardManager.
func (b *BoardManager) NewBoard() uuid.UUID {
	b.Lock()
	defer b.Unlock()

	id := uuid.New()
	for {
		if _, ok := b.boards[id]; !ok {
			break
		}
		id = uuid.New()
	}

	b.boards[id] = b.gridFactory()
	b.logger.Info(fmt.Sprintf("created board %s", id))
	return id
}

// Snapshot implements i.BoardManager.
func (b *BoardManager) Snapshot(id uuid.UUID) (*grid.Grid, error) {
	b.RLock()
	defer b.RUnlock()

	g, err := b.board(id)
	if err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// ToggleWall implements i.BoardManager.
func (b *BoardManager) ToggleWall(id uuid.UUID, row, col int) (*grid.Grid, error) {
	b.Lock()
	defer b.Unlock()

	g, err := b.board(id)
	if err != nil {
		return nil, err
	}

	next, err := g.ToggleWall(row, col)
	if err != nil {
		b.logger.Warning(fmt.Sprintf("board %s: %s", id, err))
		return nil, err
	}

	b.boards[id] = next
	return next.Clone(), nil
}

// ClearWalls implements i.BoardManager.
func (b *BoardManager) ClearWalls(id uuid.UUID) (*grid.Grid, error) {
	b.Lock()
	defer b.Unlock()

	g, err := b.board(id)
	if err != nil {
		return nil, err
	}

	g.ClearWalls()
	b.logger.Info(fmt.Sprintf("cleared walls on board %s", id))
	return g.Clone(), nil
}

// Visualize implements i.BoardManager.
func (b *BoardManager) Visualize(id uuid.UUID) (*i.Visualization, error) {
	b.Lock()
	defer b.Unlock()

	g, err := b.board(id)
	if err != nil {
		return nil, err
	}

	res, err := pathfinder.Search(g)
	if err != nil {
		b.logger.Error(fmt.Sprintf("board %s: searching: %s", id, err))
		return nil, err
	}

	path := res.Path()
	if res.Found {
		b.logger.Info(fmt.Sprintf("board %s: path of %d cells after visiting %d", id, len(path), len(res.Visited)))
	} else {
		b.logger.Info(fmt.Sprintf("board %s: finish unreachable after visiting %d", id, len(res.Visited)))
	}

	return &i.Visualization{
		Visited: res.Visited,
		Path:    path,
		Found:   res.Found,
		Events:  animation.SearchEvents(res.Visited, path, animation.VisitStep, animation.PathStep),
	}, nil
}

// GenerateMaze implements i.BoardManager.
func (b *BoardManager) GenerateMaze(id uuid.UUID) (*i.MazeResult, error) {
	b.Lock()
	defer b.Unlock()

	g, err := b.board(id)
	if err != nil {
		return nil, err
	}

	g.ClearWalls()
	walls := b.maze.Generate(g)
	b.logger.Info(fmt.Sprintf("board %s: generated maze with %d walls", id, len(walls)))

	return &i.MazeResult{
		Walls:  walls,
		Events: animation.MazeEvents(walls, animation.MazeStep),
	}, nil
}

// Delete implements i.BoardManager.
func (b *BoardManager) Delete(id uuid.UUID) error {
	b.Lock()
	defer b.Unlock()

	if _, err := b.board(id); err != nil {
		return err
	}
	delete(b.boards, id)
	b.logger.Info(fmt.Sprintf("deleted board %s", id))
	return nil
}

// board looks up a grid; the caller holds the lock.
func (b *BoardManager) board(id uuid.UUID) (*grid.Grid, error) {
	g, ok := b.boards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	return g, nil
}
