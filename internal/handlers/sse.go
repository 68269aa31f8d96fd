package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aaronzipp/jokenpo/internal/game"
	"github.com/aaronzipp/jokenpo/internal/render"
	"github.com/aaronzipp/jokenpo/internal/sse"
)

// heartbeatInterval keeps idle SSE connections open through proxies
const heartbeatInterval = 25 * time.Second

// HandleSSE streams game updates for the caller's session
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	table, err := ctx.getTable(r)
	if err != nil {
		noSession(w)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	clientChan := table.Hub.AddClient()
	defer table.Hub.RemoveClient(clientChan)

	if debug {
		log.Printf("handleSSE: session %s connected, now have %d clients", table.ID, table.Hub.ClientCount())
	}

	// Send initial data so a reconnecting page redraws everything
	writeSnapshot(w, table.Game.Snapshot())
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			if debug {
				log.Printf("handleSSE: session %s disconnected", table.ID)
			}
			table.Touch(ctx.now())
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case msg := <-clientChan:
			writeEvent(w, msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}

func writeSnapshot(w io.Writer, snap game.Snapshot) {
	writeEvent(w, sse.EventScores, render.Scores(snap.Scores))
	if snap.Round != nil {
		writeEvent(w, sse.EventBattle, render.Battle(snap.Round.Player, snap.Round.Computer))
		writeEvent(w, sse.EventResult, render.Result(snap.Round.Outcome, snap.Round.Player, snap.Round.Computer))
		writeEvent(w, sse.EventStreak, render.Streak(snap.Round.Streak))
	} else {
		writeEvent(w, sse.EventResult, render.Prompt())
		writeEvent(w, sse.EventStreak, "")
	}
	writeEvent(w, sse.EventBattleVisible, strconv.FormatBool(snap.Round != nil))
	writeEvent(w, sse.EventLock, strconv.FormatBool(snap.Locked))
}

// writeEvent writes one SSE event, splitting multi-line data into data lines
func writeEvent(w io.Writer, event, data string) {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(event)
	b.WriteString("\n")
	for _, line := range strings.Split(data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	io.WriteString(w, b.String())
}
