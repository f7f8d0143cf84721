package game

import (
	"fmt"

	"github.com/jaminalder/history-tic-tac-toe/internal/domain"
)

// Action is a user input that Reduce understands.
type Action interface {
	fmt.Stringer
	isAction()
}

// Play appends Board after the current entry, dropping any later entries.
type Play struct{ Board domain.Board }

// Click places the mover's symbol on Cell. Decided boards and occupied or
// unknown cells leave the state unchanged.
type Click struct{ Cell int }

// JumpTo displays history entry Move. Unknown entries are ignored.
type JumpTo struct{ Move int }

// Reset starts over with an empty board.
type Reset struct{}

// ToggleSteps shows or hides the move list.
type ToggleSteps struct{}

func (Play) isAction()        {}
func (Click) isAction()       {}
func (JumpTo) isAction()      {}
func (Reset) isAction()       {}
func (ToggleSteps) isAction() {}

func (a Play) String() string      { return fmt.Sprintf("play(%d filled)", a.Board.Filled()) }
func (a Click) String() string     { return fmt.Sprintf("click(%d)", a.Cell) }
func (a JumpTo) String() string    { return fmt.Sprintf("jump(%d)", a.Move) }
func (Reset) String() string       { return "reset" }
func (ToggleSteps) String() string { return "toggle-steps" }

// Reduce returns the state that follows s after a. The input state is never
// modified; a returned History never shares its backing array with s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Play:
		return play(s, a.Board)
	case Click:
		next, err := s.CurrentBoard().Place(a.Cell, domain.Mover(s.XIsNext()))
		if err != nil {
			return s
		}
		return play(s, next)
	case JumpTo:
		if a.Move < 0 || a.Move > s.Last() {
			return s
		}
		s.Current = a.Move
		return s
	case Reset:
		return New()
	case ToggleSteps:
		s.ShowSteps = !s.ShowSteps
		return s
	default:
		return s
	}
}

func play(s State, next domain.Board) State {
	history := make([]domain.Board, s.Current+2)
	copy(history, s.History[:s.Current+1])
	history[s.Current+1] = next
	return State{
		History:   history,
		Current:   len(history) - 1,
		ShowSteps: s.ShowSteps,
	}
}
