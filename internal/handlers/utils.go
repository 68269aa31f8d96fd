package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aaronzipp/jokenpo/internal/audio"
	"github.com/aaronzipp/jokenpo/internal/game"
	"github.com/aaronzipp/jokenpo/internal/models"
	"github.com/aaronzipp/jokenpo/internal/ports"
	"github.com/aaronzipp/jokenpo/internal/sse"
	"github.com/aaronzipp/jokenpo/internal/store"
)

// SessionCookie carries the session ID between page and server
const SessionCookie = "session_id"

func (ctx *Context) now() time.Time {
	if ctx.Now != nil {
		return ctx.Now()
	}
	return time.Now()
}

// getTable resolves the session cookie to its table
func (ctx *Context) getTable(r *http.Request) (*store.Table, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, fmt.Errorf("no session: %w", store.ErrSessionNotFound)
	}
	table, exists := ctx.Store.Get(cookie.Value)
	if !exists {
		return nil, fmt.Errorf("session %s: %w", cookie.Value, store.ErrSessionNotFound)
	}
	table.Touch(ctx.now())
	return table, nil
}

// ensureTable returns the caller's table, starting a new session if the
// cookie is missing or the session expired
func (ctx *Context) ensureTable(w http.ResponseWriter, r *http.Request) *store.Table {
	if table, err := ctx.getTable(r); err == nil {
		return table
	}

	table := ctx.NewTable(uuid.New().String())
	ctx.Store.Set(table)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    table.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Printf("session %s started (%d active)", table.ID, ctx.Store.Len())
	return table
}

// NewTable wires a fresh game session to its hub and remote clips
func (ctx *Context) NewTable(id string) *store.Table {
	cfg := ctx.Config
	hub := sse.NewHub(cfg.Session.SSEBufferSize, cfg.Session.SSESendTimeout)
	handles := audio.NewRemoteHandles(cfg.Audio.Sources(), hub)

	clips := make(map[models.Outcome]ports.AudioHandle, len(handles))
	for o, h := range handles {
		clips[o] = h
	}

	session := game.NewSession(id, clips, sse.NewPresenter(hub), game.Config{
		Fallback: cfg.Audio.Fallback(),
		Timer:    ctx.Timer,
		Chooser:  ctx.Chooser,
	})

	table := &store.Table{
		ID:      id,
		Game:    session,
		Hub:     hub,
		Handles: handles,
	}
	table.Touch(ctx.now())
	return table
}

// noSession tells HTMX pages to reload so a new session is issued
func noSession(w http.ResponseWriter) {
	w.Header().Set("HX-Redirect", "/")
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
