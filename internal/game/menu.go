package game

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/telemetry"
)

// Menu tracks the highlighted entry of the difficulty menu.
// The zero value highlights DifficultyEasy.
type Menu struct {
	index int
}

// Prev moves the highlight up, wrapping from the first tier to the last.
func (m *Menu) Prev() {
	n := len(Difficulties)
	m.index = (m.index - 1 + n) % n
}

// Next moves the highlight down, wrapping from the last tier to the first.
func (m *Menu) Next() {
	m.index = (m.index + 1) % len(Difficulties)
}

// Selected returns the highlighted tier.
func (m *Menu) Selected() Difficulty {
	return Difficulties[m.index]
}

// menuCommand is what a keypress means to the menu.
type menuCommand int

const (
	menuIgnore menuCommand = iota
	menuPrev
	menuNext
	menuConfirm
)

func commandFor(k Key) menuCommand {
	switch k.Code {
	case KeyUp:
		return menuPrev
	case KeyDown:
		return menuNext
	case KeyEnter:
		return menuConfirm
	case KeyRune:
		switch k.Rune {
		case 'k', 'K', 'w', 'W':
			return menuPrev
		case 'j', 'J', 's', 'S':
			return menuNext
		}
	}
	return menuIgnore
}

// SelectDifficulty runs the difficulty menu until the player confirms a tier.
// The screen is cleared and the menu redrawn before every keypress; unknown
// keys leave the highlight where it is.
func SelectDifficulty(ctx context.Context, tracer trace.Tracer, keys KeyReader, r Renderer) (Difficulty, error) {
	_, span := tracer.Start(ctx, "game.select_difficulty")
	defer span.End()

	var m Menu
	labels := Labels()
	for {
		r.Clear()
		r.RenderMenu(m.Selected(), labels)

		k, err := awaitKey(ctx, keys)
		if err != nil {
			span.RecordError(err)
			return 0, err
		}

		switch commandFor(k) {
		case menuPrev:
			m.Prev()
		case menuNext:
			m.Next()
		case menuConfirm:
			r.Clear()
			span.SetAttributes(telemetry.DifficultyKey.String(m.Selected().String()))
			return m.Selected(), nil
		}
	}
}
