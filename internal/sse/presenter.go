package sse

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aaronzipp/jokenpo/internal/audio"
	"github.com/aaronzipp/jokenpo/internal/models"
	"github.com/aaronzipp/jokenpo/internal/ports"
	"github.com/aaronzipp/jokenpo/internal/render"
)

// Presenter renders game state as HTML fragments and pushes them to every
// page connected to the hub
type Presenter struct {
	hub *Hub
}

var _ ports.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter broadcasting through hub
func NewPresenter(hub *Hub) *Presenter {
	return &Presenter{hub: hub}
}

func (p *Presenter) ShowScores(state models.ScoreState) {
	p.hub.Broadcast(EventScores, render.Scores(state))
}

func (p *Presenter) ShowResult(outcome models.Outcome, player, computer models.Choice) {
	p.hub.Broadcast(EventBattle, render.Battle(player, computer))
	p.hub.Broadcast(EventResult, render.Result(outcome, player, computer))
}

func (p *Presenter) ShowStreakMessage(text string) {
	p.hub.Broadcast(EventStreak, render.Streak(text))
}

func (p *Presenter) ShowBattleArea(visible bool) {
	p.hub.Broadcast(EventBattleVisible, strconv.FormatBool(visible))
}

func (p *Presenter) ShowPrompt() {
	p.hub.Broadcast(EventResult, render.Prompt())
}

func (p *Presenter) ShowLocked(locked bool) {
	p.hub.Broadcast(EventLock, strconv.FormatBool(locked))
}

// SendAudioCommand implements audio.Sink
func (h *Hub) SendAudioCommand(cmd audio.Command) (int, error) {
	data, err := json.Marshal(cmd)
	if err != nil {
		return 0, fmt.Errorf("encoding audio command: %w", err)
	}
	return h.Broadcast(EventAudio, string(data)), nil
}
