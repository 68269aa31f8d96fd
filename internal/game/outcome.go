package game

import "github.com/aaronzipp/jokenpo/internal/models"

// Evaluate decides a round from the player's point of view
func Evaluate(player, computer models.Choice) models.Outcome {
	switch {
	case player == computer:
		return models.Draw
	case player.Beats(computer):
		return models.Win
	default:
		return models.Lose
	}
}
