package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/telemetry"
)

// FileRecorder keeps results as a JSON array in a single file. Every Record
// reads the file, appends the entry and writes it back through a temporary
// file so a crash never leaves a half-written array behind.
type FileRecorder struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileRecorder creates a recorder writing to path.
func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path, now: time.Now}
}

// Record appends e to the score file.
func (r *FileRecorder) Record(ctx context.Context, e game.ScoreEntry) error {
	_, span := telemetry.Tracer("score").Start(ctx, "score.record")
	defer span.End()
	span.SetAttributes(
		telemetry.StoreKey.String(StoreJSON),
		telemetry.DifficultyKey.String(e.Difficulty.String()),
		telemetry.RemainingKey.Int(e.Remaining),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.read()
	if err != nil {
		span.RecordError(err)
		return err
	}
	entries = append(entries, newEntry(e, r.now()))

	if err := r.write(entries); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Entries returns every stored result in insertion order.
func (r *FileRecorder) Entries(context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

// Close is a no-op; the file is not held open between calls.
func (r *FileRecorder) Close() error { return nil }

func (r *FileRecorder) read() ([]Entry, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse scores %s: %w", r.path, err)
	}
	return entries, nil
}

func (r *FileRecorder) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace scores: %w", err)
	}
	return nil
}
