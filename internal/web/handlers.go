package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/jaminalder/history-tic-tac-toe/internal/app"
	"github.com/jaminalder/history-tic-tac-toe/internal/game"
	"github.com/jaminalder/history-tic-tac-toe/internal/view"
)

type handlers struct {
	svc *app.Service
	tpl *templates
}

// stateJSON is the machine readable snapshot served by GET /game/{id}/state.
type stateJSON struct {
	ID        string      `json:"id"`
	Board     [9]string   `json:"board"`
	Status    string      `json:"status"`
	Winner    string      `json:"winner,omitempty"`
	Line      []int       `json:"line,omitempty"`
	Over      bool        `json:"over"`
	Current   int         `json:"current"`
	XIsNext   bool        `json:"xIsNext"`
	ShowSteps bool        `json:"showSteps"`
	Steps     []game.Step `json:"steps"`
}

func (h *handlers) write(w http.ResponseWriter, r *http.Request, status int, body []byte, err error) {
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *handlers) renderGame(sess app.Session) ([]byte, error) {
	return renderTemplate(h.tpl.game, "", gameData{ID: sess.ID, View: view.Game(sess.State)})
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	body, err := renderTemplate(h.tpl.index, "base", nil)
	h.write(w, r, http.StatusOK, body, err)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	sess := h.svc.Create()
	http.Redirect(w, r, "/game/"+sess.ID, http.StatusSeeOther)
}

func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.svc.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := gameData{ID: sess.ID, View: view.Game(sess.State)}
	body, err := renderTemplate(h.tpl.page, "base", data)
	h.write(w, r, http.StatusOK, body, err)
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.svc.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	v := view.Board(sess.State.CurrentBoard(), sess.State.XIsNext())
	out := stateJSON{
		ID:        sess.ID,
		Status:    v.Status,
		Winner:    v.Winner,
		Line:      v.Line,
		Over:      v.Over,
		Current:   sess.State.Current,
		XIsNext:   sess.State.XIsNext(),
		ShowSteps: sess.State.ShowSteps,
		Steps:     sess.State.Steps(),
	}
	for i, c := range v.Cells {
		out.Board[i] = c.Glyph
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("encode state")
	}
}

// formInt reads an integer form value. Missing or malformed values map to -1,
// which every action treats as out of range.
func formInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.FormValue(key))
	if err != nil {
		return -1
	}
	return n
}

// dispatch wraps an action builder into a handler that applies the action
// and answers with the refreshed fragment, or a redirect for plain forms.
func (h *handlers) dispatch(build func(r *http.Request) game.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		sess, err := h.svc.Dispatch(id, build(r))
		if errors.Is(err, app.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("HX-Request") != "true" {
			http.Redirect(w, r, "/game/"+id, http.StatusSeeOther)
			return
		}
		body, err := h.renderGame(sess)
		h.write(w, r, http.StatusOK, body, err)
	}
}

func clickAction(r *http.Request) game.Action { return game.Click{Cell: formInt(r, "cell")} }
func jumpAction(r *http.Request) game.Action  { return game.JumpTo{Move: formInt(r, "move")} }
func resetAction(*http.Request) game.Action   { return game.Reset{} }
func toggleAction(*http.Request) game.Action  { return game.ToggleSteps{} }

