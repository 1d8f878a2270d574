package score

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/telemetry"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	word              TEXT    NOT NULL,
	remaining_guesses INTEGER NOT NULL,
	difficulty        TEXT    NOT NULL,
	recorded_at       TIMESTAMP NOT NULL
);`

// SQLiteRecorder stores results in a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if missing) the database at path and makes sure
// the scores table exists.
func OpenSQLite(path string) (*SQLiteRecorder, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create scores table: %w", err)
	}
	return &SQLiteRecorder{db: db, now: time.Now}, nil
}

// Record inserts e.
func (r *SQLiteRecorder) Record(ctx context.Context, e game.ScoreEntry) error {
	ctx, span := telemetry.Tracer("score").Start(ctx, "score.record")
	defer span.End()
	span.SetAttributes(
		telemetry.StoreKey.String(StoreSQLite),
		telemetry.DifficultyKey.String(e.Difficulty.String()),
		telemetry.RemainingKey.Int(e.Remaining),
	)

	entry := newEntry(e, r.now())
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO scores (word, remaining_guesses, difficulty, recorded_at)
		VALUES (?, ?, ?, ?)`,
		entry.Word, entry.Remaining, entry.Difficulty, entry.RecordedAt,
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// Entries returns every stored result in insertion order.
func (r *SQLiteRecorder) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT word, remaining_guesses, difficulty, recorded_at
		FROM scores
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Word, &e.Remaining, &e.Difficulty, &e.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
