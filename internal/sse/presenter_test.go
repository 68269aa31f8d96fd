package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/jokenpo/internal/models"
)

func drain(t *testing.T, c chan models.SSEMessage, n int) []models.SSEMessage {
	t.Helper()
	out := make([]models.SSEMessage, 0, n)
	for i := 0; i < n; i++ {
		select {
		case msg := <-c:
			out = append(out, msg)
		case <-time.After(time.Second):
			t.Fatalf("expected %d messages, got %d", n, len(out))
		}
	}
	return out
}

func TestPresenterEvents(t *testing.T) {
	hub := NewHub(16, 10*time.Millisecond)
	client := hub.AddClient()
	p := NewPresenter(hub)

	p.ShowBattleArea(true)
	p.ShowScores(models.ScoreState{PlayerWins: 2})
	p.ShowResult(models.Win, models.Rock, models.Scissors)
	p.ShowStreakMessage("hot")
	p.ShowLocked(true)
	p.ShowPrompt()

	msgs := drain(t, client, 7)
	events := make([]string, len(msgs))
	for i, m := range msgs {
		events[i] = m.Event
	}
	assert.Equal(t, []string{
		EventBattleVisible, EventScores, EventBattle, EventResult, EventStreak, EventLock, EventResult,
	}, events)

	assert.Equal(t, "true", msgs[0].Data)
	assert.Contains(t, msgs[1].Data, `id="playerScore" class="score-value">2<`)
	assert.Contains(t, msgs[2].Data, "✊")
	assert.Contains(t, msgs[3].Data, "Your Rock beats Scissors!")
	assert.Contains(t, msgs[4].Data, "hot")
	assert.Equal(t, "true", msgs[5].Data)
	assert.Contains(t, msgs[6].Data, "Choose your move!")
}

func TestPresenterWithoutClients(t *testing.T) {
	p := NewPresenter(NewHub(1, time.Millisecond))
	require.NotPanics(t, func() {
		p.ShowLocked(false)
		p.ShowStreakMessage("")
	})
}
