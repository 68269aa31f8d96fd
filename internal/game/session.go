package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/aaronzipp/jokenpo/internal/models"
	"github.com/aaronzipp/jokenpo/internal/ports"
)

// Chooser picks the computer's move
type Chooser func() models.Choice

// RandomChoice picks uniformly among Rock, Paper and Scissors
func RandomChoice() models.Choice {
	return models.Choices[rand.Intn(len(models.Choices))]
}

// Config holds per-session collaborators and tuning
type Config struct {
	Fallback time.Duration
	Timer    ports.Timer
	Chooser  Chooser
	// Pick selects a streak message index in [0, n)
	Pick func(n int) int
}

// Snapshot is a consistent view of a session for redrawing a page
type Snapshot struct {
	Scores models.ScoreState `json:"scores"`
	Locked bool              `json:"locked"`
	Round  *models.Round     `json:"round,omitempty"`
}

// Session is one player's game: scoreboard, input lock and result clips.
type Session struct {
	ID string

	presenter   ports.Presenter
	coordinator *Coordinator
	chooser     Chooser
	pick        func(n int) int

	mu      sync.Mutex
	tracker Tracker
	rounds  int
	last    *models.Round
}

// NewSession wires a session over its audio handles and presenter
func NewSession(id string, handles map[models.Outcome]ports.AudioHandle, presenter ports.Presenter, cfg Config) *Session {
	if cfg.Chooser == nil {
		cfg.Chooser = RandomChoice
	}
	if cfg.Pick == nil {
		cfg.Pick = rand.Intn
	}
	s := &Session{
		ID:        id,
		presenter: presenter,
		chooser:   cfg.Chooser,
		pick:      cfg.Pick,
	}
	s.coordinator = NewCoordinator(handles, cfg.Timer, CoordinatorConfig{
		Fallback:     cfg.Fallback,
		OnLockChange: presenter.ShowLocked,
	})
	return s
}

// Play runs one round. While the input lock is held it returns ErrLocked
// without touching the scoreboard or the presenter.
func (s *Session) Play(ctx context.Context, choice models.Choice) (models.Round, error) {
	if !choice.Valid() {
		return models.Round{}, fmt.Errorf("%w: %d", models.ErrUnknownChoice, choice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coordinator.Locked() {
		return models.Round{}, ErrLocked
	}

	computer := s.chooser()
	outcome := Evaluate(choice, computer)
	state := s.tracker.Apply(outcome)
	s.rounds++

	round := models.Round{
		Number:   s.rounds,
		Player:   choice,
		Computer: computer,
		Outcome:  outcome,
		Streak:   StreakMessage(state, s.pick),
	}
	s.last = &round

	s.presenter.ShowBattleArea(true)
	s.presenter.ShowScores(state)
	s.presenter.ShowResult(outcome, choice, computer)
	s.presenter.ShowStreakMessage(round.Streak)

	if err := s.coordinator.PlayResult(ctx, outcome); err != nil {
		return round, fmt.Errorf("starting result audio: %w", err)
	}
	return round, nil
}

// Reset zeroes the scoreboard, silences all clips and unlocks input
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracker.Reset()
	s.rounds = 0
	s.last = nil
	s.coordinator.Reset()

	s.presenter.ShowScores(s.tracker.State())
	s.presenter.ShowPrompt()
	s.presenter.ShowStreakMessage("")
	s.presenter.ShowBattleArea(false)
}

// Close stops pending audio and timers without redrawing anything
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coordinator.Reset()
}

// Locked reports whether play actions are currently dropped
func (s *Session) Locked() bool {
	return s.coordinator.Locked()
}

// Scores returns the current scoreboard
func (s *Session) Scores() models.ScoreState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.State()
}

// Snapshot returns scores, lock state and the last round together
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Scores: s.tracker.State(),
		Locked: s.coordinator.Locked(),
	}
	if s.last != nil {
		r := *s.last
		snap.Round = &r
	}
	return snap
}
