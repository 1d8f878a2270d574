package score

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/samdwyer/hangman/internal/game"
)

// MemoryRecorder keeps results in memory; they are lost on exit.
type MemoryRecorder struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record appends e.
func (m *MemoryRecorder) Record(_ context.Context, e game.ScoreEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, newEntry(e, time.Now()))
	return nil
}

// Entries returns a copy of the stored results.
func (m *MemoryRecorder) Entries(context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.entries), nil
}

func (m *MemoryRecorder) Close() error { return nil }
