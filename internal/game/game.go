package game

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/telemetry"
)

// Options bundles the collaborators a Game needs.
type Options struct {
	Source   WordSource
	Selector WordSelector
	Recorder ScoreRecorder // optional
	Renderer Renderer
	Keys     KeyReader
	Tracer   trace.Tracer // defaults to the global "game" tracer
}

// Game runs a single hangman game from difficulty selection to outcome.
type Game struct {
	source   WordSource
	selector WordSelector
	recorder ScoreRecorder
	renderer Renderer
	keys     KeyReader
	tracer   trace.Tracer
}

// New creates a new game instance.
func New(opts Options) *Game {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("game")
	}
	return &Game{
		source:   opts.Source,
		selector: opts.Selector,
		recorder: opts.Recorder,
		renderer: opts.Renderer,
		keys:     opts.Keys,
		tracer:   tracer,
	}
}

// Run asks for a difficulty, builds the session and plays it to the end.
func (g *Game) Run(ctx context.Context) (Result, error) {
	d, err := SelectDifficulty(ctx, g.tracer, g.keys, g.renderer)
	if err != nil {
		return Result{}, err
	}

	session, err := NewSession(ctx, g.tracer, d, g.source, g.selector)
	if err != nil {
		return Result{}, err
	}

	return session.Play(ctx, g.keys, g.renderer, g.recorder)
}
