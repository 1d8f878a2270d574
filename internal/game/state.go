// Package game provides the hangman state machine, the difficulty menu and
// the session that ties them to word sources, renderers and score storage.
package game

// State represents where a round is in its lifecycle.
type State int

const (
	// StatePlaying is the initial state; guesses are still accepted.
	StatePlaying State = iota
	// StateWon means every position of the secret has been revealed.
	StateWon
	// StateLost means the player ran out of guesses.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}
