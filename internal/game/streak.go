package game

import (
	"strconv"

	"github.com/aaronzipp/jokenpo/internal/models"
)

var winMessages = []string{
	"You're on fire! 🔥",
	"Unstoppable! Keep it up! 💪",
	"You're a winning machine! 🏆",
	"You own this game! 🎯",
	"Impressive! What a run! ⭐",
}

var loseMessages = []string{
	"Ouch... tough one, huh? 😅",
	"The computer is on a roll! 🤖",
	"Time to strike back! Don't give up! 💪",
	"That's a losing run! 😬",
	"Easy, you can still turn it around! 🎮",
}

// StreakMessage returns the banner for the current streak, or "" when no
// side has reached StreakMessageThreshold. pick chooses an index in [0, n).
func StreakMessage(s models.ScoreState, pick func(n int) int) string {
	switch {
	case s.PlayerStreak >= StreakMessageThreshold:
		return "✨ " + winMessages[pick(len(winMessages))] + " (" + strconv.Itoa(s.PlayerStreak) + " wins in a row!)"
	case s.ComputerStreak >= StreakMessageThreshold:
		return "🎯 " + loseMessages[pick(len(loseMessages))] + " (" + strconv.Itoa(s.ComputerStreak) + " losses in a row)"
	}
	return ""
}
