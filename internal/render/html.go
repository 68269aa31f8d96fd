package render

import (
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/aaronzipp/jokenpo/internal/models"
)

// PromptTitle is shown before the first round and after a reset
const PromptTitle = "Choose your move!"

// RulesLine summarizes who beats whom
const RulesLine = "Rock beats Scissors • Paper beats Rock • Scissors beats Paper"

// Scores generates HTML for the scoreboard
func Scores(s models.ScoreState) string {
	var b strings.Builder
	b.WriteString(`<div class="scoreboard">`)
	scoreCell(&b, "playerScore", "You", s.PlayerWins)
	scoreCell(&b, "drawScore", "Draws", s.Draws)
	scoreCell(&b, "computerScore", "Computer", s.ComputerWins)
	b.WriteString(`</div>`)
	return b.String()
}

func scoreCell(b *strings.Builder, id, label string, value int) {
	b.WriteString(`<div class="score"><span class="score-label">`)
	b.WriteString(label)
	b.WriteString(`</span><span id="`)
	b.WriteString(id)
	b.WriteString(`" class="score-value">`)
	b.WriteString(strconv.Itoa(value))
	b.WriteString(`</span></div>`)
}

// Result generates HTML for the round result headline and detail line
func Result(outcome models.Outcome, player, computer models.Choice) string {
	var title, detail string
	switch outcome {
	case models.Win:
		title = "🎉 You win!"
		detail = "Your " + player.Name() + " beats " + computer.Name() + "!"
	case models.Lose:
		title = "😢 You lose!"
		detail = computer.Name() + " beats your " + player.Name() + "!"
	default:
		title = "🤝 Draw!"
		detail = "Both chose " + player.Name() + "!"
	}
	return resultBlock("result-"+string(outcome), title, detail)
}

// Prompt generates the idle result block shown after a reset
func Prompt() string {
	return resultBlock("result-idle", PromptTitle, RulesLine)
}

func resultBlock(class, title, detail string) string {
	var b strings.Builder
	b.WriteString(`<h2 id="resultText" class="result-text `)
	b.WriteString(class)
	b.WriteString(`">`)
	b.WriteString(htmlpkg.EscapeString(title))
	b.WriteString(`</h2><p id="resultMessage" class="result-message">`)
	b.WriteString(htmlpkg.EscapeString(detail))
	b.WriteString(`</p>`)
	return b.String()
}

// Battle generates HTML for the two choices facing each other
func Battle(player, computer models.Choice) string {
	var b strings.Builder
	b.WriteString(`<div class="fighter"><span class="fighter-label">You</span><span id="playerChoice" class="fighter-choice">`)
	b.WriteString(player.Emoji())
	b.WriteString(`</span></div><span class="vs">VS</span><div class="fighter"><span class="fighter-label">Computer</span><span id="computerChoice" class="fighter-choice">`)
	b.WriteString(computer.Emoji())
	b.WriteString(`</span></div>`)
	return b.String()
}

// Streak generates HTML for the streak banner; empty text clears it
func Streak(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="streak-message">`)
	b.WriteString(htmlpkg.EscapeString(text))
	b.WriteString(`</div>`)
	return b.String()
}
