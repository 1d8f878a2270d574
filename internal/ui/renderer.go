package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/game"
)

// Layout rows.
const (
	rowTitle   = 0
	rowMask    = 2
	rowGuesses = 3
	rowLeft    = 4
	rowOutcome = 6
	rowMenu    = 2
)

// Theme holds the colours the renderer draws with.
type Theme struct {
	Accent tcell.Color
}

// Renderer draws hangman screens. It satisfies game.Renderer.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	mutedStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	lostStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func (r *Renderer) accent() tcell.Style {
	return tcell.StyleDefault.Foreground(r.theme.Accent).Bold(true)
}

// Clear blanks the terminal.
func (r *Renderer) Clear() {
	r.screen.Clear()
	r.screen.Show()
}

// RenderState draws the mask, the guessed letters and the remaining guesses.
func (r *Renderer) RenderState(mask string, guessed []rune, remaining int) {
	r.screen.DrawText(0, rowTitle, "HANGMAN", r.accent())

	label := "Word:    "
	r.screen.DrawText(0, rowMask, label, textStyle)
	x := len(label)
	for _, ch := range mask {
		style := r.accent()
		if ch == game.Placeholder {
			style = mutedStyle
		}
		r.screen.DrawText(x, rowMask, string(ch), style)
		x += 2
	}

	r.screen.DrawText(0, rowGuesses, "Guesses: "+FormatGuesses(guessed), textStyle)
	r.screen.DrawText(0, rowLeft, fmt.Sprintf("%d guesses left.", remaining), textStyle)
	r.screen.Show()
}

// RenderMenu draws the difficulty options with the selected one marked.
func (r *Renderer) RenderMenu(selected game.Difficulty, labels []string) {
	r.screen.DrawText(0, rowTitle, "Welcome to Hangman! Please choose a difficulty.", textStyle)
	for i, label := range labels {
		prefix, style := "  ", textStyle
		if game.Difficulty(i) == selected {
			prefix, style = "->", r.accent()
		}
		r.screen.DrawText(0, rowMenu+2*i, prefix+label, style)
	}
	r.screen.DrawText(0, rowMenu+2*len(labels), "Up/Down to move, Enter to confirm.", mutedStyle)
	r.screen.Show()
}

// RenderOutcome announces the end of the game below the final state.
func (r *Renderer) RenderOutcome(outcome game.State, secret string) {
	switch outcome {
	case game.StateWon:
		r.screen.DrawText(0, rowOutcome, WinMessage, r.accent())
	case game.StateLost:
		r.screen.DrawText(0, rowOutcome, LoseMessage(secret), lostStyle)
	}
	r.screen.Show()
}

// WinMessage is shown when the word has been guessed.
const WinMessage = "Congratulations, you guessed the word!"

// LoseMessage reveals the answer after the player ran out of guesses.
func LoseMessage(secret string) string {
	return "Out of guesses. The word was: " + secret
}

// FormatGuesses joins the tried letters with ", ".
func FormatGuesses(guessed []rune) string {
	parts := make([]string, len(guessed))
	for i, c := range guessed {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
