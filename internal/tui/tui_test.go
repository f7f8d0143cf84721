package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaminalder/history-tic-tac-toe/internal/domain"
	"github.com/jaminalder/history-tic-tac-toe/internal/game"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func text(tv *tview.TextView) string {
	return strings.TrimSpace(tv.GetText(true))
}

func cellText(a *App, i int) string {
	return strings.TrimSpace(a.board.GetCell(i/3, i%3).Text)
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Action
		ok   bool
	}{
		{name: "first cell", ev: runeKey('1'), want: game.Click{Cell: 0}, ok: true},
		{name: "last cell", ev: runeKey('9'), want: game.Click{Cell: 8}, ok: true},
		{name: "reset", ev: runeKey('r'), want: game.Reset{}, ok: true},
		{name: "steps", ev: runeKey('S'), want: game.ToggleSteps{}, ok: true},
		{name: "zero", ev: runeKey('0')},
		{name: "other rune", ev: runeKey('x')},
		{name: "enter", ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyAction(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaptureDrivesGame(t *testing.T) {
	a := New(zerolog.Nop())
	require.Equal(t, "Next player: X", text(a.status))
	require.Equal(t, "5", cellText(a, 4))

	// When: X and O play through key presses
	assert.Nil(t, a.capture(runeKey('5')))
	assert.Nil(t, a.capture(runeKey('1')))

	// Then: the board and status follow
	assert.Equal(t, "X", cellText(a, 4))
	assert.Equal(t, "O", cellText(a, 0))
	assert.Equal(t, "Next player: X", text(a.status))
	assert.Equal(t, 2, a.state.Current)

	// Unmapped keys pass through
	ev := runeKey('z')
	assert.Same(t, ev, a.capture(ev))
}

func TestWinIsHighlighted(t *testing.T) {
	a := New(zerolog.Nop())
	for _, r := range "14253" {
		a.capture(runeKey(r))
	}

	assert.Equal(t, "Winner: X", text(a.status))
	for _, i := range []int{0, 1, 2} {
		assert.Equal(t, winningBg, a.board.GetCell(i/3, i%3).BackgroundColor, "cell %d", i)
	}

	// further clicks are ignored
	a.capture(runeKey('9'))
	assert.Equal(t, "9", cellText(a, 8))
	assert.Len(t, a.state.History, 6)
}

func TestStepsListAndJump(t *testing.T) {
	a := New(zerolog.Nop())
	a.capture(runeKey('5'))
	a.capture(runeKey('1'))
	assert.Zero(t, a.steps.GetItemCount())

	a.capture(runeKey('s'))

	require.Equal(t, 3, a.steps.GetItemCount())
	main, _ := a.steps.GetItemText(0)
	assert.Equal(t, "Go to game start", main)
	main, _ = a.steps.GetItemText(2)
	assert.Equal(t, "> Go to move #2", main)
	assert.Contains(t, text(a.toggle), "Hide Steps")

	a.dispatch(game.JumpTo{Move: 1})

	assert.Equal(t, domain.X, a.state.CurrentBoard()[4])
	assert.Equal(t, domain.Empty, a.state.CurrentBoard()[0])
	assert.Equal(t, "1", cellText(a, 0))
	assert.Equal(t, "Next player: O", text(a.status))
	assert.Equal(t, 1, a.steps.GetCurrentItem())
}

func TestResetHidesSteps(t *testing.T) {
	a := New(zerolog.Nop())
	a.capture(runeKey('5'))
	a.capture(runeKey('s'))

	a.capture(runeKey('r'))

	assert.Equal(t, game.New(), a.state)
	assert.Zero(t, a.steps.GetItemCount())
	assert.Contains(t, text(a.toggle), "Show Steps")
	assert.Contains(t, text(a.toggle), "Reset Game")
	assert.Equal(t, "5", cellText(a, 4))
}
