// Package ui provides terminal rendering and keyboard input using tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/game"
)

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// ReadKey blocks until the next keypress and translates it for the game.
// Resize events are handled here and never surface. Ctrl-C and a finalized
// screen both report game.ErrAbandoned.
func (s *Screen) ReadKey() (game.Key, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return game.Key{}, game.ErrAbandoned
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return game.Key{}, game.ErrAbandoned
			}
			return translateKey(ev), nil
		}
	}
}

func translateKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return game.Key{Code: game.KeyRune, Rune: ev.Rune()}
	case tcell.KeyUp:
		return game.Key{Code: game.KeyUp}
	case tcell.KeyDown:
		return game.Key{Code: game.KeyDown}
	case tcell.KeyEnter:
		return game.Key{Code: game.KeyEnter}
	default:
		return game.Key{Code: game.KeyOther}
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// DrawText writes text starting at column x of row y.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
