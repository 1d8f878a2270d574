// Package main is the entry point for hangman.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/score"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
	"github.com/samdwyer/hangman/internal/words"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development; variables may also be set directly.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		return 1
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		return 1
	}
	defer logFile.Close()
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("telemetry shutdown failed")
				}
			}()
		}
	}

	accent, err := ui.ParseHexColor(cfg.AccentColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hangman: HANGMAN_ACCENT_COLOR: %v\n", err)
		return 1
	}

	source, err := words.Open(cfg.WordsFile, cfg.WordsDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to open word source")
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		return 1
	}

	recorder, err := score.Open(cfg.ScoreStore, cfg.ScorePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open score store")
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		return 1
	}
	defer recorder.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().
		Int64("seed", seed).
		Str("score_store", cfg.ScoreStore).
		Msg("config loaded")

	screen, err := ui.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hangman: failed to initialize terminal: %v\n", err)
		return 1
	}

	g := game.New(game.Options{
		Source:   source,
		Selector: words.NewSeededSelector(seed),
		Recorder: recorder,
		Renderer: ui.NewRenderer(screen, ui.Theme{Accent: accent}),
		Keys:     screen,
	})
	res, err := g.Run(ctx)
	screen.Close()

	switch {
	case errors.Is(err, game.ErrAbandoned):
		log.Info().Msg("game abandoned")
		return 0
	case err != nil:
		log.Error().Err(err).Msg("game failed")
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		return 1
	}

	wins, err := score.Wins(ctx, recorder, res.Difficulty)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read score history")
	}
	fmt.Println(ui.Summary(res, cfg.AccentColor, wins))
	return 0
}

// setupLogging points the global zerolog logger at the configured file; the
// terminal itself belongs to the game screen.
func setupLogging(cfg *config.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
