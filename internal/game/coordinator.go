package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/aaronzipp/jokenpo/internal/models"
	"github.com/aaronzipp/jokenpo/internal/ports"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// ErrLocked is returned when a round is requested while result audio is active
var ErrLocked = errors.New("input locked while result audio plays")

// LockState is the coordinator's externally visible state
type LockState string

const (
	StateIdle    LockState = "idle"
	StatePlaying LockState = "playing"
)

// ReleaseReason records which event ended a Playing cycle
type ReleaseReason string

const (
	ReleaseCompleted ReleaseReason = "completed"
	ReleaseFallback  ReleaseReason = "fallback"
	ReleaseReset     ReleaseReason = "reset"
)

// SystemTimer schedules callbacks with time.AfterFunc
type SystemTimer struct{}

// AfterFunc implements ports.Timer
func (SystemTimer) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	return time.AfterFunc(d, fn)
}

// CoordinatorConfig controls lock release behavior
type CoordinatorConfig struct {
	// Fallback releases the lock when the clip never reports completion.
	// It must exceed the longest clip.
	Fallback time.Duration

	// OnLockChange is called with the coordinator mutex held, in transition
	// order. It must not call back into the Coordinator.
	OnLockChange func(locked bool)

	// OnRelease observes how each Playing cycle ended. Same rules as OnLockChange.
	OnRelease func(outcome models.Outcome, reason ReleaseReason)
}

// round is the state of one Playing cycle. done is the one-shot guard that
// makes the completion/fallback race resolve exactly once.
type round struct {
	seq      uint64
	outcome  models.Outcome
	handle   ports.AudioHandle
	sub      ports.Subscription
	fallback ports.TimerHandle
	done     bool
}

// Coordinator gates player input while a result clip plays and guarantees the
// gate reopens through either clip completion or the fallback timer.
type Coordinator struct {
	handles map[models.Outcome]ports.AudioHandle
	timer   ports.Timer
	cfg     CoordinatorConfig

	mu      sync.Mutex
	locked  bool
	current *round
	seq     uint64
}

// NewCoordinator creates an idle coordinator over one handle per outcome.
func NewCoordinator(handles map[models.Outcome]ports.AudioHandle, timer ports.Timer, cfg CoordinatorConfig) *Coordinator {
	if cfg.Fallback <= 0 {
		cfg.Fallback = DefaultFallbackTimeout
	}
	if timer == nil {
		timer = SystemTimer{}
	}
	return &Coordinator{
		handles: handles,
		timer:   timer,
		cfg:     cfg,
	}
}

// PlayResult locks input and starts the clip for outcome. Playback failures
// are logged and swallowed; the fallback timer still releases the lock.
func (c *Coordinator) PlayResult(ctx context.Context, outcome models.Outcome) error {
	target, ok := c.handles[outcome]
	if !ok || target == nil {
		return fmt.Errorf("%w: no audio handle for %q", models.ErrUnknownOutcome, outcome)
	}

	c.mu.Lock()
	if c.locked {
		c.mu.Unlock()
		return ErrLocked
	}

	for _, o := range models.Outcomes {
		if h := c.handles[o]; h != nil && h != target && h.IsPlaying() {
			stopHandle(h, o)
		}
	}

	c.setLocked(true)

	if err := target.SeekToStart(); err != nil {
		log.Printf("playResult: rewinding %s clip: %v", outcome, err)
	}

	c.seq++
	r := &round{seq: c.seq, outcome: outcome, handle: target}
	c.current = r
	r.sub = target.OnCompleted(func() { c.release(r, ReleaseCompleted) })
	r.fallback = c.timer.AfterFunc(c.cfg.Fallback, func() { c.release(r, ReleaseFallback) })
	c.mu.Unlock()

	if debug {
		log.Printf("playResult: round=%d outcome=%s fallback=%s", r.seq, outcome, c.cfg.Fallback)
	}

	// Outside the mutex: a handle may report completion synchronously.
	if err := target.Play(ctx); err != nil {
		log.Printf("playResult: %s clip did not start, waiting for fallback: %v", outcome, err)
	}
	return nil
}

// Reset forces the coordinator idle: every clip is stopped, any pending
// timer or listener is detached and the lock is cleared.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range models.Outcomes {
		if h := c.handles[o]; h != nil {
			stopHandle(h, o)
		}
	}
	if r := c.current; r != nil {
		c.finish(r, ReleaseReset)
	}
	c.setLocked(false)
}

// Locked reports whether play actions are currently rejected
func (c *Coordinator) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locked
}

// State returns Idle or Playing
func (c *Coordinator) State() LockState {
	if c.Locked() {
		return StatePlaying
	}
	return StateIdle
}

// Fallback returns the configured fallback duration
func (c *Coordinator) Fallback() time.Duration {
	return c.cfg.Fallback
}

// release ends r if it is still the active round. The second trigger of a
// round, and any trigger from an earlier round, is a no-op.
func (c *Coordinator) release(r *round, reason ReleaseReason) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.done || c.current != r {
		if debug {
			log.Printf("release: ignoring %s for round=%d (already released)", reason, r.seq)
		}
		return
	}
	if reason == ReleaseFallback {
		stopHandle(r.handle, r.outcome)
	}
	c.finish(r, reason)
	c.setLocked(false)
}

// finish detaches r's timer and listener. Must be called with mu held.
func (c *Coordinator) finish(r *round, reason ReleaseReason) {
	r.done = true
	if r.fallback != nil {
		r.fallback.Stop()
	}
	r.handle.CancelSubscription(r.sub)
	c.current = nil

	if debug {
		log.Printf("release: round=%d outcome=%s reason=%s", r.seq, r.outcome, reason)
	}
	if c.cfg.OnRelease != nil {
		c.cfg.OnRelease(r.outcome, reason)
	}
}

// setLocked must be called with mu held
func (c *Coordinator) setLocked(locked bool) {
	c.locked = locked
	if c.cfg.OnLockChange != nil {
		c.cfg.OnLockChange(locked)
	}
}

func stopHandle(h ports.AudioHandle, outcome models.Outcome) {
	if err := h.Pause(); err != nil {
		log.Printf("audio: pausing %s clip: %v", outcome, err)
	}
	if err := h.SeekToStart(); err != nil {
		log.Printf("audio: rewinding %s clip: %v", outcome, err)
	}
}
