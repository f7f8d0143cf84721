package web

import (
	"bytes"
	"html/template"

	"github.com/jaminalder/history-tic-tac-toe/internal/view"
)

type templates struct {
	page  *template.Template
	game  *template.Template
	index *template.Template
}

// gameData feeds the game fragment.
type gameData struct {
	ID   string
	View view.GameView
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"resetCaption": func() string { return view.ResetCaption },
		// rows splits the board into its three rows
		"rows": func(cells [9]view.CellView) [][]view.CellView {
			out := make([][]view.CellView, 0, 3)
			for r := 0; r < 3; r++ {
				out = append(out, cells[r*3:r*3+3])
			}
			return out
		},
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
.board-row{display:flex}
.square{width:3em;height:3em;font-size:1.5em;font-weight:bold}
.winning-square{background:#9f9}
.game{display:flex;gap:2em}
</style>
</head><body>{{template "content" .}}</body></html>`))
	// The game fragment lives in the base set so the page can include it.
	template.Must(base.New("game").Parse(gameTemplate))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Tic-Tac-Toe</h1><form action="/game" method="post"><button>New game</button></form>`))
	page := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Tic-Tac-Toe</h1>{{template "game" .}}`))
	// Standalone fragment for htmx swaps
	game := template.Must(template.New("game_only").Funcs(funcs()).Parse(gameTemplate))
	return &templates{page: page, game: game, index: index}
}

// renderTemplate executes the named template of t, or t itself when name is empty.
func renderTemplate(t *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if name == "" {
		err = t.Execute(&buf, data)
	} else {
		err = t.ExecuteTemplate(&buf, name, data)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const gameTemplate = `
<div id="game" class="game{{if .View.Board.Over}} game-over{{end}}">
  <div class="game-board">
    <div class="status">{{.View.Board.Status}}</div>
    {{range $row := rows .View.Board.Cells}}
    <div class="board-row">
      {{range $cell := $row}}
      <form hx-post="/game/{{$.ID}}/play" hx-target="#game" hx-swap="outerHTML" action="/game/{{$.ID}}/play" method="post">
        <input type="hidden" name="cell" value="{{$cell.Index}}">
        <button type="submit" class="square{{if $cell.Winning}} winning-square{{end}}"{{if not $cell.Playable}} disabled{{end}}>{{$cell.Glyph}}</button>
      </form>
      {{end}}
    </div>
    {{end}}
    <form hx-post="/game/{{.ID}}/reset" hx-target="#game" hx-swap="outerHTML" action="/game/{{.ID}}/reset" method="post">
      <button type="submit" class="reset-button">{{resetCaption}}</button>
    </form>
  </div>
  <div class="game-info">
    <form hx-post="/game/{{.ID}}/toggle" hx-target="#game" hx-swap="outerHTML" action="/game/{{.ID}}/toggle" method="post">
      <button type="submit" class="toggle-steps-button">{{.View.ToggleCaption}}</button>
    </form>
    {{if .View.ShowSteps}}
    <ol class="steps-list">
      {{range .View.Steps}}
      <li>
        <form hx-post="/game/{{$.ID}}/jump" hx-target="#game" hx-swap="outerHTML" action="/game/{{$.ID}}/jump" method="post">
          <input type="hidden" name="move" value="{{.Move}}">
          <button type="submit"{{if eq .Move $.View.Current}} class="current-step"{{end}}>{{.Label}}</button>
        </form>
      </li>
      {{end}}
    </ol>
    {{end}}
  </div>
</div>
`
