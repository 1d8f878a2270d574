package game

import "context"

// WordSource returns the candidate words for a difficulty tier.
type WordSource interface {
	ReadWords(d Difficulty) ([]string, error)
}

// WordSelector picks one word from a non-empty list.
type WordSelector interface {
	Pick(words []string) (string, error)
}

// ScoreRecorder persists the result of a won game.
type ScoreRecorder interface {
	Record(ctx context.Context, entry ScoreEntry) error
}

// ScoreEntry is a completed game as handed to a ScoreRecorder.
type ScoreEntry struct {
	Word       string
	Remaining  int
	Difficulty Difficulty
}

// Renderer draws the game. Implementations must not block indefinitely.
type Renderer interface {
	Clear()
	RenderState(mask string, guessed []rune, remaining int)
	RenderMenu(selected Difficulty, labels []string)
	RenderOutcome(outcome State, secret string)
}

// KeyReader blocks until the next keypress is available.
type KeyReader interface {
	ReadKey() (Key, error)
}

// KeyCode identifies the kind of key that was pressed.
type KeyCode int

const (
	// KeyRune is a printable character; see Key.Rune.
	KeyRune KeyCode = iota
	// KeyUp is the up arrow.
	KeyUp
	// KeyDown is the down arrow.
	KeyDown
	// KeyEnter is the return key.
	KeyEnter
	// KeyOther is any key the game has no binding for.
	KeyOther
)

// Key is a single keypress translated from the terminal.
type Key struct {
	Code KeyCode
	Rune rune
}
