// Package tui is a terminal frontend for the game, drawn with tview.
package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/jaminalder/history-tic-tac-toe/internal/game"
	"github.com/jaminalder/history-tic-tac-toe/internal/view"
)

const help = "1-9 play  enter select  r reset  s steps  tab focus  q quit"

// Theme colors for the board.
var (
	winningBg = tcell.ColorDarkGreen
	hintFg    = tcell.ColorGray
)

// App owns one game and the widgets that show it.
type App struct {
	app    *tview.Application
	state  game.State
	log    zerolog.Logger
	board  *tview.Table
	status *tview.TextView
	toggle *tview.TextView
	steps  *tview.List
	root   *tview.Flex
}

// New builds the widgets for a fresh game.
func New(logger zerolog.Logger) *App {
	a := &App{
		app:    tview.NewApplication(),
		state:  game.New(),
		log:    logger.With().Str("component", "tui").Logger(),
		board:  tview.NewTable(),
		status: tview.NewTextView(),
		toggle: tview.NewTextView(),
		steps:  tview.NewList(),
	}

	a.board.SetBorders(true).SetSelectable(true, true)
	a.board.SetSelectedFunc(func(row, col int) {
		a.dispatch(game.Click{Cell: row*3 + col})
	})
	a.steps.ShowSecondaryText(false)
	a.steps.SetBorder(true).SetTitle("Steps")

	hint := tview.NewTextView().SetText(help)
	hint.SetTextColor(hintFg)

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.status, 1, 0, false).
		AddItem(a.board, 7, 0, true).
		AddItem(hint, 1, 0, false)
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.toggle, 1, 0, false).
		AddItem(a.steps, 0, 1, false)
	a.root = tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(right, 0, 1, false)

	a.app.SetInputCapture(a.capture)
	a.draw()
	return a
}

// Run blocks until the user quits.
func (a *App) Run() error {
	a.log.Info().Msg("terminal ui started")
	if err := a.app.SetRoot(a.root, true).SetFocus(a.board).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func (a *App) capture(ev *tcell.EventKey) *tcell.EventKey {
	switch {
	case ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q'):
		a.app.Stop()
		return nil
	case ev.Key() == tcell.KeyTab:
		if a.state.ShowSteps && a.board.HasFocus() {
			a.app.SetFocus(a.steps)
		} else {
			a.app.SetFocus(a.board)
		}
		return nil
	}
	act, ok := keyAction(ev)
	if !ok {
		return ev
	}
	a.dispatch(act)
	return nil
}

// keyAction maps a key press to a game action.
func keyAction(ev *tcell.EventKey) (game.Action, bool) {
	if ev.Key() != tcell.KeyRune {
		return nil, false
	}
	switch r := ev.Rune(); {
	case r >= '1' && r <= '9':
		return game.Click{Cell: int(r - '1')}, true
	case r == 'r' || r == 'R':
		return game.Reset{}, true
	case r == 's' || r == 'S':
		return game.ToggleSteps{}, true
	default:
		return nil, false
	}
}

func (a *App) dispatch(act game.Action) {
	a.state = game.Reduce(a.state, act)
	a.log.Debug().Stringer("action", act).Int("current", a.state.Current).Msg("dispatched")
	a.draw()
}

// draw refreshes every widget from the current state.
func (a *App) draw() {
	v := view.Game(a.state)

	a.status.SetText(v.Board.Status)
	for _, c := range v.Board.Cells {
		cell := tview.NewTableCell(" " + glyph(c) + " ").SetAlign(tview.AlignCenter)
		switch {
		case c.Winning:
			cell.SetBackgroundColor(winningBg)
		case c.Glyph == "":
			cell.SetTextColor(hintFg)
		}
		a.board.SetCell(c.Index/3, c.Index%3, cell)
	}

	a.toggle.SetText("s: " + v.ToggleCaption + "   r: " + view.ResetCaption)
	a.steps.Clear()
	for _, st := range v.Steps {
		move := st.Move
		label := st.Label
		if move == v.Current {
			label = "> " + label
		}
		a.steps.AddItem(label, "", 0, func() {
			a.dispatch(game.JumpTo{Move: move})
		})
	}
	if len(v.Steps) > 0 {
		a.steps.SetCurrentItem(v.Current)
	}
	if !v.ShowSteps && a.steps.HasFocus() {
		a.app.SetFocus(a.board)
	}
}

// glyph shows the cell symbol, or its key for empty cells.
func glyph(c view.CellView) string {
	if c.Glyph != "" {
		return c.Glyph
	}
	return strconv.Itoa(c.Index + 1)
}
