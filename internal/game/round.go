package game

import (
	"slices"
	"strings"
)

// Placeholder marks a position of the secret that has not been revealed yet.
const Placeholder = '_'

// Round holds the mutable state of a single game: the secret, the reveal
// mask, the letters tried so far and the remaining wrong guesses.
// A Round is owned by one goroutine and is not safe for concurrent use.
type Round struct {
	secret    []rune
	mask      []rune
	guessed   []rune
	remaining int
	allowance int
}

// NewRound starts a round for secret with the given wrong-guess allowance.
// The secret is lowercased; the mask starts fully hidden.
func NewRound(secret string, allowance int) *Round {
	if allowance < 0 {
		allowance = 0
	}
	s := []rune(strings.ToLower(secret))
	mask := make([]rune, len(s))
	for i := range mask {
		mask[i] = Placeholder
	}
	return &Round{
		secret:    s,
		mask:      mask,
		remaining: allowance,
		allowance: allowance,
	}
}

// Guess applies a lowercase letter to the round and reports whether it was a
// novel guess. Repeated letters and guesses after the round has ended leave
// the state untouched.
func (r *Round) Guess(c rune) bool {
	if r.State().Terminal() || r.HasGuessed(c) {
		return false
	}
	r.guessed = append(r.guessed, c)

	hit := false
	for i, s := range r.secret {
		if s == c {
			r.mask[i] = c
			hit = true
		}
	}
	if !hit {
		r.remaining--
	}
	return true
}

// HasGuessed reports whether c has already been tried this round.
func (r *Round) HasGuessed(c rune) bool {
	return slices.Contains(r.guessed, c)
}

// State derives the round state from the mask and the remaining guesses.
func (r *Round) State() State {
	if slices.Equal(r.mask, r.secret) {
		return StateWon
	}
	if r.remaining <= 0 {
		return StateLost
	}
	return StatePlaying
}

// Secret returns the lowercased word being guessed.
func (r *Round) Secret() string {
	return string(r.secret)
}

// Mask returns the partially revealed secret.
func (r *Round) Mask() string {
	return string(r.mask)
}

// Guessed returns the attempted letters in the order they were tried.
func (r *Round) Guessed() []rune {
	return slices.Clone(r.guessed)
}

// Remaining returns how many wrong guesses are still allowed.
func (r *Round) Remaining() int {
	return r.remaining
}

// Allowance returns the wrong-guess allowance the round started with.
func (r *Round) Allowance() int {
	return r.allowance
}
