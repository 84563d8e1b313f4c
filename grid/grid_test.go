package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countFlags(g *Grid) (starts, finishes, walls int) {
	for i := 0; i < g.Size(); i++ {
		n := g.NodeAt(i)
		if n.IsStart {
			starts++
		}
		if n.IsFinish {
			finishes++
		}
		if n.IsWall {
			walls++
		}
	}
	return starts, finishes, walls
}

func TestNew(t *testing.T) {
	cases := []struct {
		name          string
		rows, cols    int
		start, finish Position
	}{
		{"SingleRow", 1, 2, Position{0, 0}, Position{0, 1}},
		{"Square", 3, 3, Position{0, 0}, Position{2, 2}},
		{"Default", DefaultRows, DefaultCols, Position{DefaultStartRow, DefaultStartCol}, Position{DefaultFinishRow, DefaultFinishCol}},
		{"Tall", 40, 2, Position{39, 1}, Position{0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.rows, tc.cols, tc.start, tc.finish)
			require.NoError(t, err)

			assert.Equal(t, tc.rows*tc.cols, g.Size())
			starts, finishes, walls := countFlags(g)
			assert.Equal(t, 1, starts)
			assert.Equal(t, 1, finishes)
			assert.Zero(t, walls)

			assert.Equal(t, tc.start, g.Start().Pos())
			assert.Equal(t, tc.finish, g.Finish().Pos())
			for i := 0; i < g.Size(); i++ {
				n := g.NodeAt(i)
				assert.Equal(t, Infinity, n.Distance)
				assert.False(t, n.IsVisited)
				assert.Equal(t, i, g.Index(n.Pos()))
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		rows, cols    int
		start, finish Position
		err           error
	}{
		{"ZeroRows", 0, 5, Position{0, 0}, Position{0, 1}, ErrInvalidDimensions},
		{"NegativeCols", 5, -1, Position{0, 0}, Position{0, 1}, ErrInvalidDimensions},
		{"StartOutside", 3, 3, Position{3, 0}, Position{0, 1}, ErrOutOfBounds},
		{"FinishOutside", 3, 3, Position{0, 0}, Position{0, -1}, ErrOutOfBounds},
		{"SameCell", 3, 3, Position{1, 1}, Position{1, 1}, ErrSameEndpoints},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.rows, tc.cols, tc.start, tc.finish)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCreateInitialGrid(t *testing.T) {
	g := CreateInitialGrid()

	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 50, g.Cols())
	assert.Equal(t, Position{Row: 10, Col: 15}, g.StartPos())
	assert.Equal(t, Position{Row: 10, Col: 35}, g.FinishPos())
	assert.Empty(t, g.Walls())
}

func TestToggleWall(t *testing.T) {
	g := CreateInitialGrid()

	t.Run("returns independent copy", func(t *testing.T) {
		next, err := g.ToggleWall(3, 4)
		require.NoError(t, err)

		n, _ := next.Node(3, 4)
		assert.True(t, n.IsWall)
		orig, _ := g.Node(3, 4)
		assert.False(t, orig.IsWall, "source grid must not change")
		assert.Equal(t, []Position{{Row: 3, Col: 4}}, next.Walls())

		// Rows are not aliased: mutating the copy in place leaves g alone.
		require.NoError(t, next.SetWall(3, 5, true))
		orig, _ = g.Node(3, 5)
		assert.False(t, orig.IsWall)
	})

	t.Run("twice restores layout", func(t *testing.T) {
		once, err := g.ToggleWall(7, 7)
		require.NoError(t, err)
		twice, err := once.ToggleWall(7, 7)
		require.NoError(t, err)
		assert.Equal(t, g.Walls(), twice.Walls())
	})

	t.Run("start and finish may be walled", func(t *testing.T) {
		next, err := g.ToggleWall(DefaultStartRow, DefaultStartCol)
		require.NoError(t, err)
		assert.True(t, next.Start().IsWall)
	})

	t.Run("out of range", func(t *testing.T) {
		for _, p := range []Position{{-1, 0}, {0, -1}, {20, 0}, {0, 50}} {
			_, err := g.ToggleWall(p.Row, p.Col)
			assert.ErrorIs(t, err, ErrOutOfBounds, "position %v", p)
		}
	})
}

func TestSetWallAndClear(t *testing.T) {
	g, err := New(2, 3, Position{0, 0}, Position{1, 2})
	require.NoError(t, err)

	require.NoError(t, g.SetWall(0, 1, true))
	require.NoError(t, g.SetWall(1, 1, true))
	assert.ErrorIs(t, g.SetWall(2, 0, true), ErrOutOfBounds)
	assert.Equal(t, []Position{{0, 1}, {1, 1}}, g.Walls())

	g.ClearWalls()
	assert.Empty(t, g.Walls())
}

func TestNeighbors(t *testing.T) {
	g, err := New(3, 3, Position{0, 0}, Position{2, 2})
	require.NoError(t, err)

	assert.Equal(t, []Position{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, g.Neighbors(Position{1, 1}))
	assert.Equal(t, []Position{{1, 0}, {0, 1}}, g.Neighbors(Position{0, 0}))
	assert.Equal(t, []Position{{1, 2}, {2, 1}}, g.Neighbors(Position{2, 2}))
}

func TestResetSearch(t *testing.T) {
	g := CreateInitialGrid()
	n := g.Start()
	n.Distance = 0
	n.IsVisited = true

	g.ResetSearch()
	assert.Equal(t, Infinity, n.Distance)
	assert.False(t, n.IsVisited)
}

func TestRender(t *testing.T) {
	g, err := New(2, 4, Position{0, 0}, Position{1, 3})
	require.NoError(t, err)
	require.NoError(t, g.SetWall(0, 2, true))

	assert.Equal(t, "S.#.\n...F\n", g.String())
	assert.Equal(t, "S*#.\noo.F\n", g.Render(
		[]Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		[]Position{{0, 0}, {0, 1}},
	))
}
