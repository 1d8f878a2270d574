package game

import (
	"fmt"
	"strings"
)

// Difficulty is a tier that fixes how many wrong guesses the player may make.
type Difficulty int

const (
	// DifficultyEasy allows seven wrong guesses.
	DifficultyEasy Difficulty = iota
	// DifficultyMedium allows six wrong guesses.
	DifficultyMedium
	// DifficultyHard allows five wrong guesses.
	DifficultyHard
)

// Difficulties lists every tier in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

var allowances = [...]int{
	DifficultyEasy:   7,
	DifficultyMedium: 6,
	DifficultyHard:   5,
}

var labels = [...]string{
	DifficultyEasy:   "Easy  ",
	DifficultyMedium: "Medium",
	DifficultyHard:   "Hard  ",
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// Allowance returns the number of wrong guesses permitted for the tier.
func (d Difficulty) Allowance() int {
	if !d.Valid() {
		return 0
	}
	return allowances[d]
}

// Label returns the menu text for the tier, including its allowance.
func (d Difficulty) Label() string {
	if !d.Valid() {
		return "Unknown"
	}
	return fmt.Sprintf("%s (%d guesses)", labels[d], allowances[d])
}

// String returns the tier name used in word-list files and telemetry.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a tier name back to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Labels returns the menu labels of all tiers in menu order.
func Labels() []string {
	out := make([]string, len(Difficulties))
	for i, d := range Difficulties {
		out[i] = d.Label()
	}
	return out
}
