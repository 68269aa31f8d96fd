package store

import (
	"errors"
	"sync"
	"time"

	"github.com/aaronzipp/jokenpo/internal/audio"
	"github.com/aaronzipp/jokenpo/internal/game"
	"github.com/aaronzipp/jokenpo/internal/models"
	"github.com/aaronzipp/jokenpo/internal/sse"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired
var ErrSessionNotFound = errors.New("session not found")

// Table bundles everything that belongs to one browser session
type Table struct {
	ID      string
	Game    *game.Session
	Hub     *sse.Hub
	Handles map[models.Outcome]*audio.RemoteHandle

	mu       sync.Mutex
	lastSeen time.Time
}

// Touch marks the table as used now
func (t *Table) Touch(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen = now
}

// LastSeen returns the time of the last request for this table
func (t *Table) LastSeen() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastSeen
}

// SessionStore manages table storage
type SessionStore struct {
	tables map[string]*Table
	mu     sync.RWMutex
}

// NewSessionStore creates a new session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		tables: make(map[string]*Table),
	}
}

// Get retrieves a table by session ID
func (s *SessionStore) Get(id string) (*Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, exists := s.tables[id]
	return table, exists
}

// Set stores a table
func (s *SessionStore) Set(table *Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table.ID] = table
}

// Delete removes a table and stops its pending audio and timers
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	table, exists := s.tables[id]
	delete(s.tables, id)
	s.mu.Unlock()

	if exists {
		table.Game.Close()
	}
}

// Len returns the number of stored tables
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}

// Sweep deletes tables idle for longer than ttl that have no open SSE
// connection, and returns how many were removed
func (s *SessionStore) Sweep(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	var expired []*Table
	for id, table := range s.tables {
		if table.Hub.ClientCount() == 0 && now.Sub(table.LastSeen()) > ttl {
			expired = append(expired, table)
			delete(s.tables, id)
		}
	}
	s.mu.Unlock()

	for _, table := range expired {
		table.Game.Close()
	}
	return len(expired)
}
