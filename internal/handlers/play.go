package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/aaronzipp/jokenpo/internal/game"
	"github.com/aaronzipp/jokenpo/internal/models"
)

// HandlePlay plays one round. While result audio is playing the request is
// dropped silently; the page learns about every change through SSE.
func (ctx *Context) HandlePlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	choice, err := models.ParseChoice(strings.TrimPrefix(r.URL.Path, "/play/"))
	if err != nil {
		http.Error(w, "Unknown choice", http.StatusBadRequest)
		return
	}

	table, err := ctx.getTable(r)
	if err != nil {
		noSession(w)
		return
	}

	if table.Game.Locked() {
		if debug {
			log.Printf("HandlePlay: session=%s dropped %s while locked", table.ID, choice)
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	round, err := table.Game.Play(r.Context(), choice)
	switch {
	case errors.Is(err, game.ErrLocked):
		if debug {
			log.Printf("HandlePlay: session=%s dropped %s while locked", table.ID, choice)
		}
	case err != nil:
		log.Printf("HandlePlay: session=%s round=%d: %v", table.ID, round.Number, err)
		http.Error(w, "Could not play round", http.StatusInternalServerError)
		return
	case debug:
		log.Printf("HandlePlay: session=%s round=%d %s vs %s -> %s", table.ID, round.Number, round.Player, round.Computer, round.Outcome)
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReset zeroes the scoreboard, silences audio and unlocks input
func (ctx *Context) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	table, err := ctx.getTable(r)
	if err != nil {
		noSession(w)
		return
	}

	table.Game.Reset()
	if debug {
		log.Printf("HandleReset: session=%s", table.ID)
	}
	w.WriteHeader(http.StatusNoContent)
}
