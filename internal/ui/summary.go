package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/hangman/internal/game"
)

var (
	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

// Summary renders the result for the normal terminal once the game screen
// is gone. accent is a hex colour such as "#FFD700". wins is the number of
// recorded wins at the result's difficulty; it is omitted when zero.
func Summary(res game.Result, accent string, wins int) string {
	winStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)

	var headline string
	switch res.Outcome {
	case game.StateWon:
		headline = winStyle.Render(WinMessage)
	case game.StateLost:
		headline = loseStyle.Render(LoseMessage(res.Word))
	default:
		headline = labelStyle.Render("Game abandoned.")
	}

	lines := []string{
		headline,
		"",
		labelStyle.Render("Word:       ") + spaced(res.Word),
		labelStyle.Render("Difficulty: ") + res.Difficulty.String(),
		labelStyle.Render("Guesses:    ") + FormatGuesses(res.Guessed),
		labelStyle.Render("Remaining:  ") + fmt.Sprint(res.Remaining),
	}
	if wins > 0 {
		lines = append(lines, labelStyle.Render("Wins:       ")+fmt.Sprintf("%d on %s", wins, res.Difficulty))
	}
	return summaryBox.Render(strings.Join(lines, "\n"))
}

func spaced(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}
