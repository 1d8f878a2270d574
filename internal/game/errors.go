package game

import "errors"

var (
	// ErrEmptyWordList is returned when the word source has no candidates for
	// the chosen difficulty. No round is started.
	ErrEmptyWordList = errors.New("word list is empty")

	// ErrAbandoned is returned when a pending keypress read is given up,
	// either because the context ended or the terminal was interrupted.
	ErrAbandoned = errors.New("input abandoned")
)
