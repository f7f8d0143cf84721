// Package game holds the move history of one tic-tac-toe session and the
// reducer that advances it.
package game

import (
	"strconv"

	"github.com/jaminalder/history-tic-tac-toe/internal/domain"
)

// State is the full controller state: the ordered board history, the index
// of the displayed board, and whether the move list is visible.
type State struct {
	History   []domain.Board
	Current   int
	ShowSteps bool
}

// Step is one entry of the move list.
type Step struct {
	Move  int    `json:"move"`
	Label string `json:"label"`
}

// New returns the initial state: one empty board, X to move, steps hidden.
func New() State {
	return State{History: []domain.Board{{}}}
}

// CurrentBoard returns the displayed board.
func (s State) CurrentBoard() domain.Board {
	return s.History[s.Current]
}

// XIsNext is true on even moves.
func (s State) XIsNext() bool {
	return s.Current%2 == 0
}

// Last is the index of the newest history entry.
func (s State) Last() int {
	return len(s.History) - 1
}

// Steps lists every history entry with its jump label.
func (s State) Steps() []Step {
	steps := make([]Step, len(s.History))
	for i := range s.History {
		steps[i] = Step{Move: i, Label: StepLabel(i)}
	}
	return steps
}

// StepLabel is the move list caption for history entry move.
func StepLabel(move int) string {
	if move == 0 {
		return "Go to game start"
	}
	return "Go to move #" + strconv.Itoa(move)
}
