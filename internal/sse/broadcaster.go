package sse

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/aaronzipp/jokenpo/internal/game"
	"github.com/aaronzipp/jokenpo/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Hub fans out messages to every page connected to one session
type Hub struct {
	sendTimeout time.Duration
	bufferSize  int

	mu      sync.RWMutex
	clients map[chan models.SSEMessage]struct{}
}

// NewHub creates a hub; zero values fall back to the game defaults
func NewHub(bufferSize int, sendTimeout time.Duration) *Hub {
	if bufferSize <= 0 {
		bufferSize = game.SSEBufferSize
	}
	if sendTimeout <= 0 {
		sendTimeout = game.SSETimeout
	}
	return &Hub{
		sendTimeout: sendTimeout,
		bufferSize:  bufferSize,
		clients:     make(map[chan models.SSEMessage]struct{}),
	}
}

// AddClient registers a new client channel and returns it
func (h *Hub) AddClient() chan models.SSEMessage {
	client := make(chan models.SSEMessage, h.bufferSize)
	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.clients); n > 0 {
		log.Printf("WARN: session already has %d open SSE connection(s)", n)
	}
	h.clients[client] = struct{}{}
	return client
}

// RemoveClient unregisters a client channel
func (h *Hub) RemoveClient(client chan models.SSEMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
	if debug {
		log.Printf("removeSSEClient: client removed, now have %d total clients", len(h.clients))
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to all connected clients and returns how many
// received it. Slow clients are skipped after the send timeout.
func (h *Hub) Broadcast(event, data string) int {
	h.mu.RLock()
	// Collect all client channels while holding the lock
	clients := make([]chan models.SSEMessage, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	if debug {
		log.Printf("broadcastSSE: event=%s to %d clients", event, len(clients))
	}

	// Send messages WITHOUT holding the lock
	msg := models.SSEMessage{Event: event, Data: data}
	successCount := 0
	for _, client := range clients {
		timer := time.NewTimer(h.sendTimeout)
		select {
		case client <- msg:
			successCount++
		case <-timer.C:
			if debug {
				log.Printf("broadcastSSE: timeout sending %s to client", event)
			}
		}
		timer.Stop()
	}
	if debug {
		log.Printf("broadcastSSE: sent to %d/%d clients successfully", successCount, len(clients))
	}
	return successCount
}
