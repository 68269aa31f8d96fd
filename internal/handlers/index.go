package handlers

import (
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aaronzipp/jokenpo/internal/config"
	"github.com/aaronzipp/jokenpo/internal/game"
	"github.com/aaronzipp/jokenpo/internal/models"
	"github.com/aaronzipp/jokenpo/internal/ports"
	"github.com/aaronzipp/jokenpo/internal/render"
	"github.com/aaronzipp/jokenpo/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Context holds shared application dependencies
type Context struct {
	Store     *store.SessionStore
	Templates *template.Template
	Config    config.Config

	// Timer and Chooser default to the wall clock and a random computer move
	Timer   ports.Timer
	Chooser game.Chooser
	Now     func() time.Time
}

// HandleIndex serves the game page, creating a session on first visit
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	table := ctx.ensureTable(w, r)
	snap := table.Game.Snapshot()

	data := struct {
		SessionID  string
		Choices    []models.Choice
		Outcomes   []models.Outcome
		Sources    map[models.Outcome]string
		Scores     template.HTML
		Result     template.HTML
		Battle     template.HTML
		Streak     template.HTML
		ShowBattle bool
		Locked     bool
		FallbackMS int64
	}{
		SessionID:  table.ID,
		Choices:    models.Choices[:],
		Outcomes:   models.Outcomes[:],
		Sources:    ctx.Config.Audio.Sources(),
		Scores:     template.HTML(render.Scores(snap.Scores)),
		Result:     template.HTML(render.Prompt()),
		Locked:     snap.Locked,
		FallbackMS: ctx.Config.Audio.Fallback().Milliseconds(),
	}
	if snap.Round != nil {
		data.Result = template.HTML(render.Result(snap.Round.Outcome, snap.Round.Player, snap.Round.Computer))
		data.Battle = template.HTML(render.Battle(snap.Round.Player, snap.Round.Computer))
		data.Streak = template.HTML(render.Streak(snap.Round.Streak))
		data.ShowBattle = true
	}

	if err := ctx.Templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("HandleIndex: rendering page: %v", err)
	}
}
