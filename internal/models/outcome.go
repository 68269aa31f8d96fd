package models

import (
	"errors"
	"fmt"
)

// ErrUnknownOutcome is returned when an outcome name cannot be parsed
var ErrUnknownOutcome = errors.New("unknown outcome")

// Outcome is the result of a round from the player's point of view
type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Draw Outcome = "draw"
)

// Outcomes lists every outcome, one audio clip each
var Outcomes = [...]Outcome{Win, Lose, Draw}

// ParseOutcome converts a path segment into an Outcome
func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(s); o {
	case Win, Lose, Draw:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}
