package models

// ScoreState tracks the session scoreboard and current streaks
type ScoreState struct {
	PlayerWins     int `json:"playerWins"`
	ComputerWins   int `json:"computerWins"`
	Draws          int `json:"draws"`
	PlayerStreak   int `json:"playerStreak"`
	ComputerStreak int `json:"computerStreak"`
}

// Rounds returns the number of rounds counted since the last reset
func (s ScoreState) Rounds() int {
	return s.PlayerWins + s.ComputerWins + s.Draws
}
