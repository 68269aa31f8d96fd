// Package audio implements result clips that play in the browser but are
// controlled, and tracked, by the server.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/aaronzipp/jokenpo/internal/models"
	"github.com/aaronzipp/jokenpo/internal/ports"
)

// ErrNoListeners is returned by Play when no page is connected to hear the clip
var ErrNoListeners = errors.New("no connected page to play audio")

// Action is a command understood by the page's audio script
type Action string

const (
	ActionPlay   Action = "play"
	ActionPause  Action = "pause"
	ActionRewind Action = "rewind"
)

// Command is sent to the page for one clip. Token identifies the playback so
// that completion reports from an earlier playback can be told apart.
type Command struct {
	Action Action `json:"action"`
	Sound  string `json:"sound"`
	Src    string `json:"src"`
	Token  uint64 `json:"token"`
}

// Sink delivers commands to the page. It returns the number of pages reached.
type Sink interface {
	SendAudioCommand(cmd Command) (int, error)
}

// RemoteHandle is a ports.AudioHandle backed by an <audio> element on the page.
type RemoteHandle struct {
	outcome models.Outcome
	src     string
	sink    Sink

	mu      sync.Mutex
	playing bool
	token   uint64
	nextSub ports.Subscription
	subs    map[ports.Subscription]func()
}

var _ ports.AudioHandle = (*RemoteHandle)(nil)

// NewRemoteHandle creates the clip for outcome served from src
func NewRemoteHandle(outcome models.Outcome, src string, sink Sink) *RemoteHandle {
	return &RemoteHandle{
		outcome: outcome,
		src:     src,
		sink:    sink,
		subs:    make(map[ports.Subscription]func()),
	}
}

// NewRemoteHandles creates one handle per outcome, sources keyed by outcome
func NewRemoteHandles(sources map[models.Outcome]string, sink Sink) map[models.Outcome]*RemoteHandle {
	handles := make(map[models.Outcome]*RemoteHandle, len(models.Outcomes))
	for _, o := range models.Outcomes {
		handles[o] = NewRemoteHandle(o, sources[o], sink)
	}
	return handles
}

// Outcome returns the result this clip belongs to
func (h *RemoteHandle) Outcome() models.Outcome {
	return h.outcome
}

// Token returns the token of the most recent playback
func (h *RemoteHandle) Token() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token
}

// SeekToStart implements ports.AudioHandle
func (h *RemoteHandle) SeekToStart() error {
	return h.send(ActionRewind, h.Token())
}

// Play implements ports.AudioHandle. A nil error only means the command was
// delivered; the page reports a refused playback through Failed.
func (h *RemoteHandle) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	h.token++
	token := h.token
	h.playing = true
	h.mu.Unlock()

	n, err := h.sink.SendAudioCommand(h.command(ActionPlay, token))
	if err == nil && n == 0 {
		err = ErrNoListeners
	}
	if err != nil {
		h.stopped(token)
		return fmt.Errorf("play %s: %w", h.outcome, err)
	}
	return nil
}

// Pause implements ports.AudioHandle
func (h *RemoteHandle) Pause() error {
	h.mu.Lock()
	h.playing = false
	token := h.token
	h.mu.Unlock()
	return h.send(ActionPause, token)
}

// IsPlaying implements ports.AudioHandle
func (h *RemoteHandle) IsPlaying() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.playing
}

// OnCompleted implements ports.AudioHandle
func (h *RemoteHandle) OnCompleted(fn func()) ports.Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextSub++
	h.subs[h.nextSub] = fn
	return h.nextSub
}

// CancelSubscription implements ports.AudioHandle
func (h *RemoteHandle) CancelSubscription(sub ports.Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, sub)
}

// Completed records that the page finished playback token. Reports for any
// other playback, or for a clip no longer playing, are ignored and false is
// returned. Listeners run without the handle lock held.
func (h *RemoteHandle) Completed(token uint64) bool {
	h.mu.Lock()
	if token != h.token || !h.playing {
		h.mu.Unlock()
		return false
	}
	h.playing = false
	listeners := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		listeners = append(listeners, fn)
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return true
}

// Failed records that the page refused to start playback token
func (h *RemoteHandle) Failed(token uint64, reason string) {
	log.Printf("audio: page could not play %s clip (token=%d): %s", h.outcome, token, reason)
	h.stopped(token)
}

func (h *RemoteHandle) stopped(token uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if token == h.token {
		h.playing = false
	}
}

func (h *RemoteHandle) send(action Action, token uint64) error {
	if _, err := h.sink.SendAudioCommand(h.command(action, token)); err != nil {
		return fmt.Errorf("%s %s: %w", action, h.outcome, err)
	}
	return nil
}

func (h *RemoteHandle) command(action Action, token uint64) Command {
	return Command{
		Action: action,
		Sound:  string(h.outcome),
		Src:    h.src,
		Token:  token,
	}
}
