package game

import "github.com/aaronzipp/jokenpo/internal/models"

// Tracker keeps the scoreboard for one session. It is not safe for concurrent
// use; Session serializes access.
type Tracker struct {
	state models.ScoreState
}

// Apply counts a round and returns the updated state
func (t *Tracker) Apply(outcome models.Outcome) models.ScoreState {
	switch outcome {
	case models.Win:
		t.state.PlayerWins++
		t.state.PlayerStreak++
		t.state.ComputerStreak = 0
	case models.Lose:
		t.state.ComputerWins++
		t.state.ComputerStreak++
		t.state.PlayerStreak = 0
	case models.Draw:
		t.state.Draws++
		t.state.PlayerStreak = 0
		t.state.ComputerStreak = 0
	}
	return t.state
}

// Reset zeroes every counter
func (t *Tracker) Reset() {
	t.state = models.ScoreState{}
}

// State returns a copy of the current scoreboard
func (t *Tracker) State() models.ScoreState {
	return t.state
}
