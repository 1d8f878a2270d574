// Package config loads the game configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/samdwyer/hangman/internal/score"
)

// Config holds the application configuration.
type Config struct {
	// WordsFile is a YAML or JSON file of word lists keyed by difficulty.
	WordsFile string
	// WordsDir holds easy.txt, medium.txt and hard.txt. Ignored if WordsFile is set.
	WordsDir string

	ScoreStore string
	ScorePath  string

	// Seed for random number generation. A seed of 0 means a random seed will be generated.
	Seed int64

	LogFile  string
	LogLevel zerolog.Level

	AccentColor string
}

// Load reads the configuration from HANGMAN_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		WordsFile:   os.Getenv("HANGMAN_WORDS_FILE"),
		WordsDir:    os.Getenv("HANGMAN_WORDS_DIR"),
		ScoreStore:  getEnv("HANGMAN_SCORE_STORE", score.StoreJSON),
		ScorePath:   os.Getenv("HANGMAN_SCORE_PATH"),
		LogFile:     getEnv("HANGMAN_LOG_FILE", "hangman.log"),
		AccentColor: getEnv("HANGMAN_ACCENT_COLOR", "#FFD700"),
	}

	switch cfg.ScoreStore {
	case score.StoreJSON:
		if cfg.ScorePath == "" {
			cfg.ScorePath = "scores.json"
		}
	case score.StoreSQLite:
		if cfg.ScorePath == "" {
			cfg.ScorePath = "scores.db"
		}
	case score.StoreMemory, score.StoreNone:
	default:
		return nil, fmt.Errorf("HANGMAN_SCORE_STORE: unknown store %q (want json, sqlite, memory or none)", cfg.ScoreStore)
	}

	if v := os.Getenv("HANGMAN_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("HANGMAN_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	lvl, err := zerolog.ParseLevel(getEnv("HANGMAN_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("HANGMAN_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
