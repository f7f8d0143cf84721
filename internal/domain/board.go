package domain

import "errors"

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Mover returns the symbol that plays when xIsNext has the given value.
func Mover(xIsNext bool) Cell {
	if xIsNext {
		return X
	}
	return O
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// Line is a winning triple of cell indices.
type Line [3]int

// Contains reports whether cell i is part of the line.
func (l Line) Contains(i int) bool {
	return l[0] == i || l[1] == i || l[2] == i
}

// Lines lists every winning triple in evaluation order.
var Lines = [8]Line{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// WinResult names the winner and the line that won.
type WinResult struct {
	Winner Cell
	Line   Line
}

// Errors returned by domain operations.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game over")
)

// Evaluate returns the first line in Lines held entirely by one symbol.
func Evaluate(b Board) (WinResult, bool) {
	for _, ln := range Lines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return WinResult{Winner: a, Line: ln}, true
		}
	}
	return WinResult{}, false
}

// Full reports whether no empty cells remain.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// IsDraw is true for a full board without a winning line.
func (b Board) IsDraw() bool {
	if _, ok := Evaluate(b); ok {
		return false
	}
	return b.Full()
}

// Place returns a copy of b with cell i set to c. The receiver is left untouched.
func (b Board) Place(i int, c Cell) (Board, error) {
	if _, ok := Evaluate(b); ok {
		return b, ErrGameOver
	}
	if i < 0 || i >= len(b) {
		return b, ErrOutOfBounds
	}
	if b[i] != Empty {
		return b, ErrOccupied
	}
	b[i] = c
	return b, nil
}

// Filled counts the non-empty cells.
func (b Board) Filled() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}
