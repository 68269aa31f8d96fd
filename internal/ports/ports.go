package ports

import (
	"context"
	"time"

	"github.com/aaronzipp/jokenpo/internal/models"
)

// Subscription identifies a completion listener registered on an AudioHandle.
type Subscription uint64

// AudioHandle is a reusable result clip.
type AudioHandle interface {
	// SeekToStart rewinds the clip.
	SeekToStart() error
	// Play requests playback. Playback may still fail after Play returns;
	// such failures are reported by the implementation, not the caller.
	Play(ctx context.Context) error
	Pause() error
	IsPlaying() bool
	// OnCompleted registers fn to run when the current playback finishes.
	OnCompleted(fn func()) Subscription
	CancelSubscription(sub Subscription)
}

// TimerHandle is a pending timer. Stop reports whether it prevented the call.
type TimerHandle interface {
	Stop() bool
}

// Timer schedules callbacks.
type Timer interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

// Presenter renders game state for the player.
type Presenter interface {
	ShowScores(state models.ScoreState)
	ShowResult(outcome models.Outcome, player, computer models.Choice)
	ShowStreakMessage(text string)
	ShowBattleArea(visible bool)
	ShowPrompt()
	ShowLocked(locked bool)
}
