// Package score persists the results of won games.
package score

import (
	"context"
	"fmt"
	"time"

	"github.com/samdwyer/hangman/internal/game"
)

// Entry is a stored game result.
type Entry struct {
	Word       string    `json:"word"`
	Remaining  int       `json:"remaining_guesses"`
	Difficulty string    `json:"difficulty"`
	RecordedAt time.Time `json:"recorded_at"`
}

func newEntry(e game.ScoreEntry, now time.Time) Entry {
	return Entry{
		Word:       e.Word,
		Remaining:  e.Remaining,
		Difficulty: e.Difficulty.String(),
		RecordedAt: now.UTC(),
	}
}

// Store kinds accepted by Open.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
	StoreNone   = "none"
)

// Recorder is a game.ScoreRecorder that can also list what it stored.
type Recorder interface {
	game.ScoreRecorder
	Entries(ctx context.Context) ([]Entry, error)
	Close() error
}

// Open returns the recorder for kind, storing at path.
func Open(kind, path string) (Recorder, error) {
	switch kind {
	case StoreJSON:
		return NewFileRecorder(path), nil
	case StoreSQLite:
		return OpenSQLite(path)
	case StoreMemory:
		return NewMemoryRecorder(), nil
	case StoreNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown score store %q", kind)
	}
}

// Wins counts the results r holds for d.
func Wins(ctx context.Context, r Recorder, d game.Difficulty) (int, error) {
	entries, err := r.Entries(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if e.Difficulty == d.String() {
			n++
		}
	}
	return n, nil
}

// Nop discards every result.
type Nop struct{}

func (Nop) Record(context.Context, game.ScoreEntry) error { return nil }

func (Nop) Entries(context.Context) ([]Entry, error) { return nil, nil }

func (Nop) Close() error { return nil }
