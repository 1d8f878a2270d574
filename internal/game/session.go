package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/telemetry"
)

// Result describes how a played session ended.
type Result struct {
	Outcome    State
	Word       string
	Remaining  int
	Difficulty Difficulty
	Guessed    []rune
}

// Session is one game: a chosen difficulty and the round played at it.
type Session struct {
	difficulty Difficulty
	round      *Round
	tracer     trace.Tracer
}

// NewSession loads the candidate words for d, picks the secret and prepares
// a fresh round. It fails with ErrEmptyWordList when there is nothing to pick.
func NewSession(ctx context.Context, tracer trace.Tracer, d Difficulty, source WordSource, selector WordSelector) (*Session, error) {
	_, span := tracer.Start(ctx, "game.new_session")
	defer span.End()
	span.SetAttributes(telemetry.DifficultyKey.String(d.String()))

	words, err := source.ReadWords(d)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read words")
		return nil, fmt.Errorf("read %s words: %w", d, err)
	}
	span.SetAttributes(attribute.Int("candidates", len(words)))
	if len(words) == 0 {
		span.SetStatus(codes.Error, ErrEmptyWordList.Error())
		return nil, fmt.Errorf("%s: %w", d, ErrEmptyWordList)
	}

	secret, err := selector.Pick(words)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("pick word: %w", err)
	}

	log.Info().
		Str("difficulty", d.String()).
		Int("candidates", len(words)).
		Msg("session created")
	log.Debug().Str("secret", secret).Msg("secret chosen")

	return &Session{
		difficulty: d,
		round:      NewRound(secret, d.Allowance()),
		tracer:     tracer,
	}, nil
}

// Difficulty returns the tier the session was created for.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Round exposes the session's round for inspection.
func (s *Session) Round() *Round {
	return s.round
}

// Play drives the round to a terminal state. The state is drawn before every
// letter request; repeated letters only cause a redraw. After the round ends
// the final state is drawn once more and the outcome announced. Won games are
// handed to recorder; recording failures are logged and otherwise ignored.
func (s *Session) Play(ctx context.Context, keys KeyReader, r Renderer, recorder ScoreRecorder) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "game.play")
	defer span.End()
	span.SetAttributes(
		telemetry.DifficultyKey.String(s.difficulty.String()),
		attribute.Int("allowance", s.round.Allowance()),
	)

	round := s.round
	for round.State() == StatePlaying {
		r.Clear()
		r.RenderState(round.Mask(), round.Guessed(), round.Remaining())

		c, err := ReadLetter(ctx, keys)
		if err != nil {
			span.RecordError(err)
			return Result{}, err
		}

		if !round.Guess(c) {
			log.Debug().Str("letter", string(c)).Msg("repeat guess")
			continue
		}
		log.Debug().
			Str("letter", string(c)).
			Int("remaining", round.Remaining()).
			Msg("guess applied")
	}

	outcome := round.State()
	r.Clear()
	r.RenderState(round.Mask(), round.Guessed(), round.Remaining())
	r.RenderOutcome(outcome, round.Secret())

	span.SetAttributes(
		telemetry.OutcomeKey.String(outcome.String()),
		telemetry.RemainingKey.Int(round.Remaining()),
		attribute.Int("guesses", len(round.Guessed())),
	)
	log.Info().
		Str("outcome", outcome.String()).
		Int("remaining", round.Remaining()).
		Msg("game finished")

	if outcome == StateWon && recorder != nil {
		entry := ScoreEntry{
			Word:       round.Secret(),
			Remaining:  round.Remaining(),
			Difficulty: s.difficulty,
		}
		if err := recorder.Record(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("failed to record score")
		}
	}

	return Result{
		Outcome:    outcome,
		Word:       round.Secret(),
		Remaining:  round.Remaining(),
		Difficulty: s.difficulty,
		Guessed:    round.Guessed(),
	}, nil
}
