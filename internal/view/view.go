// Package view projects game state into what a frontend draws. Nothing here
// holds state; every call is recomputed from its arguments.
package view

import (
	"github.com/jaminalder/history-tic-tac-toe/internal/domain"
	"github.com/jaminalder/history-tic-tac-toe/internal/game"
)

// Button captions.
const (
	ShowStepsCaption = "Show Steps"
	HideStepsCaption = "Hide Steps"
	ResetCaption     = "Reset Game"
)

// CellView is one rendered square.
type CellView struct {
	Index    int
	Glyph    string
	Winning  bool
	Playable bool
}

// BoardView is the rendered board with its status line.
type BoardView struct {
	Cells  [9]CellView
	Status string
	Winner string
	Line   []int
	Over   bool
}

// GameView is everything a frontend needs for one frame.
type GameView struct {
	Board         BoardView
	Current       int
	ShowSteps     bool
	ToggleCaption string
	Steps         []game.Step
}

// Status derives the status line. A winner takes precedence over a full board.
func Status(b domain.Board, xIsNext bool) string {
	if res, ok := domain.Evaluate(b); ok {
		return "Winner: " + res.Winner.String()
	}
	if b.IsDraw() {
		return "Draw"
	}
	return "Next player: " + domain.Mover(xIsNext).String()
}

// Board renders b with xIsNext deciding the mover.
func Board(b domain.Board, xIsNext bool) BoardView {
	res, won := domain.Evaluate(b)
	v := BoardView{
		Status: Status(b, xIsNext),
		Over:   won || b.Full(),
	}
	if won {
		v.Winner = res.Winner.String()
		v.Line = res.Line[:]
	}
	for i, c := range b {
		v.Cells[i] = CellView{
			Index:    i,
			Glyph:    c.String(),
			Winning:  won && res.Line.Contains(i),
			Playable: !won && c == domain.Empty,
		}
	}
	return v
}

// Game renders a whole session state.
func Game(s game.State) GameView {
	v := GameView{
		Board:         Board(s.CurrentBoard(), s.XIsNext()),
		Current:       s.Current,
		ShowSteps:     s.ShowSteps,
		ToggleCaption: ShowStepsCaption,
	}
	if s.ShowSteps {
		v.ToggleCaption = HideStepsCaption
		v.Steps = s.Steps()
	}
	return v
}
