package game

import (
	"context"
	"sync"
	"time"

	"github.com/aaronzipp/jokenpo/internal/models"
	"github.com/aaronzipp/jokenpo/internal/ports"
)

type fakeHandle struct {
	mu      sync.Mutex
	playing bool
	playErr error
	plays   int
	pauses  int
	seeks   int
	next    ports.Subscription
	subs    map[ports.Subscription]func()
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{subs: make(map[ports.Subscription]func())}
}

func (h *fakeHandle) SeekToStart() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seeks++
	return nil
}

func (h *fakeHandle) Play(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.plays++
	if h.playErr != nil {
		return h.playErr
	}
	h.playing = true
	return nil
}

func (h *fakeHandle) Pause() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pauses++
	h.playing = false
	return nil
}

func (h *fakeHandle) IsPlaying() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.playing
}

func (h *fakeHandle) OnCompleted(fn func()) ports.Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.subs[h.next] = fn
	return h.next
}

func (h *fakeHandle) CancelSubscription(sub ports.Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, sub)
}

// complete simulates the clip reaching its end
func (h *fakeHandle) complete() {
	h.mu.Lock()
	h.playing = false
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (h *fakeHandle) counts() (plays, pauses, seeks, subs int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.plays, h.pauses, h.seeks, len(h.subs)
}

func (h *fakeHandle) setPlaying(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.playing = v
}

type fakeClips struct {
	win, lose, draw *fakeHandle
}

func newFakeClips() *fakeClips {
	return &fakeClips{win: newFakeHandle(), lose: newFakeHandle(), draw: newFakeHandle()}
}

func (c *fakeClips) handles() map[models.Outcome]ports.AudioHandle {
	return map[models.Outcome]ports.AudioHandle{
		models.Win:  c.win,
		models.Lose: c.lose,
		models.Draw: c.draw,
	}
}

// manualTimer only fires when the test says so
type manualTimer struct {
	mu     sync.Mutex
	timers []*manualTimerHandle
}

type manualTimerHandle struct {
	d       time.Duration
	fn      func()
	mu      sync.Mutex
	stopped bool
	fired   bool
}

func (t *manualTimer) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := &manualTimerHandle{d: d, fn: fn}
	t.timers = append(t.timers, h)
	return h
}

func (t *manualTimer) get(i int) *manualTimerHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timers[i]
}

func (t *manualTimer) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.timers)
}

func (h *manualTimerHandle) Stop() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped || h.fired {
		return false
	}
	h.stopped = true
	return true
}

// fire runs the callback unless the timer was stopped
func (h *manualTimerHandle) fire() {
	h.mu.Lock()
	if h.stopped || h.fired {
		h.mu.Unlock()
		return
	}
	h.fired = true
	h.mu.Unlock()
	h.fn()
}

// fireLate runs the callback even if Stop was called, like a timer goroutine
// that had already started when it was cancelled
func (h *manualTimerHandle) fireLate() {
	h.mu.Lock()
	h.fired = true
	h.mu.Unlock()
	h.fn()
}

func (h *manualTimerHandle) isStopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

type recordingPresenter struct {
	mu      sync.Mutex
	calls   []string
	scores  []models.ScoreState
	streaks []string
	locks   []bool
}

func (p *recordingPresenter) record(call string) {
	p.calls = append(p.calls, call)
}

func (p *recordingPresenter) ShowScores(s models.ScoreState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("scores")
	p.scores = append(p.scores, s)
}

func (p *recordingPresenter) ShowResult(o models.Outcome, _, _ models.Choice) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("result:" + string(o))
}

func (p *recordingPresenter) ShowStreakMessage(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("streak")
	p.streaks = append(p.streaks, text)
}

func (p *recordingPresenter) ShowBattleArea(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if visible {
		p.record("battle:on")
	} else {
		p.record("battle:off")
	}
}

func (p *recordingPresenter) ShowPrompt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("prompt")
}

func (p *recordingPresenter) ShowLocked(locked bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if locked {
		p.record("lock")
	} else {
		p.record("unlock")
	}
	p.locks = append(p.locks, locked)
}

func (p *recordingPresenter) snapshotCalls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *recordingPresenter) snapshotLocks() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.locks...)
}

func (p *recordingPresenter) lastStreak() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.streaks) == 0 {
		return ""
	}
	return p.streaks[len(p.streaks)-1]
}

func fixedChoice(c models.Choice) Chooser {
	return func() models.Choice { return c }
}

func firstMessage(int) int { return 0 }
