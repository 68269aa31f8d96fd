package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownChoice is returned when a choice name cannot be parsed
var ErrUnknownChoice = errors.New("unknown choice")

// Choice is one of the three moves a side can pick
type Choice int

const (
	Rock Choice = iota + 1
	Paper
	Scissors
)

// Choices lists every valid choice in keyboard order (1, 2, 3)
var Choices = [...]Choice{Rock, Paper, Scissors}

// ParseChoice accepts a choice name ("rock") or its keyboard digit ("1")
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "1":
		return Rock, nil
	case "paper", "2":
		return Paper, nil
	case "scissors", "3":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChoice, s)
}

// Valid reports whether c is one of Rock, Paper or Scissors
func (c Choice) Valid() bool {
	return c >= Rock && c <= Scissors
}

// Beats reports whether c wins against other
func (c Choice) Beats(other Choice) bool {
	switch c {
	case Rock:
		return other == Scissors
	case Paper:
		return other == Rock
	case Scissors:
		return other == Paper
	}
	return false
}

// String returns the lowercase identifier used in URLs and data attributes
func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// Key returns the keyboard shortcut for c
func (c Choice) Key() string {
	return strconv.Itoa(int(c))
}

// Name returns the display name
func (c Choice) Name() string {
	switch c {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return "?"
}

// Emoji returns the symbol shown in the battle area
func (c Choice) Emoji() string {
	switch c {
	case Rock:
		return "✊"
	case Paper:
		return "📄"
	case Scissors:
		return "✂️"
	}
	return "❔"
}
