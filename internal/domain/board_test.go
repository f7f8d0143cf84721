package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = Empty
	x = X
	o = O
)

func TestEvaluateEveryLine(t *testing.T) {
	for _, ln := range Lines {
		for _, side := range []Cell{X, O} {
			var b Board
			for _, i := range ln {
				b[i] = side
			}

			res, ok := Evaluate(b)

			require.True(t, ok, "line %v for %v", ln, side)
			assert.Equal(t, side, res.Winner)
			assert.Equal(t, ln, res.Line)
		}
	}
}

func TestEvaluateNoWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{name: "empty", board: Board{}},
		{name: "in progress", board: Board{
			x, o, x,
			e, o, e,
			e, e, e,
		}},
		{name: "draw", board: Board{
			x, o, o,
			o, x, x,
			x, x, o,
		}},
		{name: "mixed line", board: Board{
			x, x, o,
			e, e, e,
			e, e, e,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Evaluate(tt.board)
			assert.False(t, ok)
		})
	}
}

func TestEvaluatePriorityOrder(t *testing.T) {
	t.Run("row before column", func(t *testing.T) {
		// Given: top row and left column both held by X
		b := Board{
			x, x, x,
			x, o, o,
			x, o, o,
		}

		// When: evaluating
		res, ok := Evaluate(b)

		// Then: the row wins because rows are checked first
		require.True(t, ok)
		assert.Equal(t, Line{0, 1, 2}, res.Line)
	})

	t.Run("column before diagonal", func(t *testing.T) {
		b := Board{
			o, x, x,
			o, o, x,
			o, x, o,
		}

		res, ok := Evaluate(b)

		require.True(t, ok)
		assert.Equal(t, O, res.Winner)
		assert.Equal(t, Line{0, 3, 6}, res.Line)
	})

	t.Run("main diagonal before anti diagonal", func(t *testing.T) {
		b := Board{
			x, e, x,
			e, x, e,
			x, e, x,
		}

		res, ok := Evaluate(b)

		require.True(t, ok)
		assert.Equal(t, Line{0, 4, 8}, res.Line)
	})

	t.Run("first row for both symbols", func(t *testing.T) {
		// malformed: two different winners
		b := Board{
			e, e, e,
			o, o, o,
			x, x, x,
		}

		res, ok := Evaluate(b)

		require.True(t, ok)
		assert.Equal(t, O, res.Winner)
		assert.Equal(t, Line{3, 4, 5}, res.Line)
	})
}

func TestIsDraw(t *testing.T) {
	full := Board{
		x, o, o,
		o, x, x,
		x, x, o,
	}
	assert.True(t, full.Full())
	assert.True(t, full.IsDraw())

	// full board whose last move completes a line is a win, not a draw
	won := Board{
		x, o, x,
		o, x, o,
		o, x, x,
	}
	assert.True(t, won.Full())
	assert.False(t, won.IsDraw())

	assert.False(t, Board{}.IsDraw())
}

func TestPlace(t *testing.T) {
	t.Run("copies the board", func(t *testing.T) {
		var b Board

		next, err := b.Place(4, X)

		require.NoError(t, err)
		assert.Equal(t, X, next[4])
		assert.Equal(t, Empty, b[4])
		assert.Equal(t, 1, next.Filled())
	})

	t.Run("out of bounds", func(t *testing.T) {
		var b Board
		for _, i := range []int{-1, 9, 42} {
			_, err := b.Place(i, X)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		}
	})

	t.Run("occupied", func(t *testing.T) {
		b := Board{x}

		_, err := b.Place(0, O)

		assert.ErrorIs(t, err, ErrOccupied)
	})

	t.Run("game over", func(t *testing.T) {
		b := Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		_, err := b.Place(5, O)

		assert.ErrorIs(t, err, ErrGameOver)
	})
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", Empty.String())
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
	assert.Equal(t, X, Mover(true))
	assert.Equal(t, O, Mover(false))
}

func TestLineContains(t *testing.T) {
	ln := Line{2, 4, 6}
	assert.True(t, ln.Contains(4))
	assert.False(t, ln.Contains(5))
}
