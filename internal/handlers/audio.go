package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaronzipp/jokenpo/internal/models"
)

// HandleAudio receives playback reports from the page:
// POST /audio/:outcome/ended?token=N and POST /audio/:outcome/failed?token=N
func (ctx *Context) HandleAudio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/audio/"), "/"), "/")
	if len(parts) != 2 {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}
	outcome, err := models.ParseOutcome(parts[0])
	if err != nil {
		http.Error(w, "Unknown sound", http.StatusBadRequest)
		return
	}
	token, err := strconv.ParseUint(r.URL.Query().Get("token"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusBadRequest)
		return
	}

	table, err := ctx.getTable(r)
	if err != nil {
		noSession(w)
		return
	}
	handle := table.Handles[outcome]

	switch parts[1] {
	case "ended":
		if !handle.Completed(token) && debug {
			log.Printf("HandleAudio: session=%s ignoring stale %s completion token=%d", table.ID, outcome, token)
		}
	case "failed":
		handle.Failed(token, r.FormValue("reason"))
	default:
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
