/*
Package maze scatters walls over a grid.

The generator walls the whole border, then visits every interior cell with
an even row and an even column. Each such cell becomes a wall with
probability 1-threshold, and when it does one of its orthogonal neighbours,
picked at random, is walled too. The result is a sparse, partially
connected pattern rather than a perfect maze.

The start and finish cells are never walled. Generation mutates the grid in
place and reports the cells it walled in the order it walled them, which is
the order a renderer should animate them in.
*/
package maze

import (
	"errors"
	"math/rand"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// DefaultThreshold is the probability that an even interior cell stays open.
const DefaultThreshold = 0.1

var (
	ErrNilRand          = errors.New("maze: random source is nil")
	ErrInvalidThreshold = errors.New("maze: threshold must be within [0, 1]")
)

// Option customizes a Generator.
type Option func(*Generator)

// WithThreshold sets the probability that an even interior cell stays open.
func WithThreshold(t float64) Option {
	return func(g *Generator) {
		g.threshold = t
	}
}

// Generator places walls on a grid using its own random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng       *rand.Rand
	threshold float64
}

// New creates a Generator drawing from rng.
func New(rng *rand.Rand, opts ...Option) (*Generator, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	g := &Generator{rng: rng, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(g)
	}

	if g.threshold < 0 || g.threshold > 1 {
		return nil, ErrInvalidThreshold
	}
	return g, nil
}

// NewSeeded creates a Generator with a private source seeded with seed.
// Two generators with the same seed produce the same walls on the same grid.
func NewSeeded(seed int64, opts ...Option) (*Generator, error) {
	return New(rand.New(rand.NewSource(seed)), opts...)
}

// Generate walls g in place and returns the cells it turned into walls,
// in generation order. Cells that already were walls are not reported.
func (m *Generator) Generate(g *grid.Grid) []grid.Position {
	var walled []grid.Position
	wall := func(row, col int) {
		if !g.InBounds(row, col) {
			return
		}
		n, _ := g.Node(row, col)
		if n.IsStart || n.IsFinish || n.IsWall {
			return
		}
		n.IsWall = true
		walled = append(walled, n.Pos())
	}

	lastRow, lastCol := g.Rows()-1, g.Cols()-1
	for row := 0; row <= lastRow; row++ {
		for col := 0; col <= lastCol; col++ {
			if row == 0 || col == 0 || row == lastRow || col == lastCol {
				wall(row, col)
				continue
			}

			if row%2 != 0 || col%2 != 0 {
				continue
			}

			if m.rng.Float64() > m.threshold {
				wall(row, col)
				offset := m.randomOffset()
				wall(row+offset.Row, col+offset.Col)
			}
		}
	}

	return walled
}

// randomOffset picks an axis with equal probability, then a direction on it.
func (m *Generator) randomOffset() grid.Position {
	if m.rng.Float64() < 0.5 {
		return grid.Position{Row: 0, Col: m.sign()}
	}
	return grid.Position{Row: m.sign(), Col: 0}
}

func (m *Generator) sign() int {
	if m.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
