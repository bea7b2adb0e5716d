package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-term/internal/game"
)

// Theme defines the colour palette for tiles and messages.
type Theme struct {
	// Correct colours letters in the right position.
	Correct lipgloss.Color

	// Present colours letters that belong elsewhere in the word.
	Present lipgloss.Color

	// Absent colours letters that are not in the word.
	Absent lipgloss.Color

	// Accent is used for titles and the final result.
	Accent lipgloss.Color

	// Muted is for hints and help text.
	Muted lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() Theme {
	return Theme{
		Correct: lipgloss.Color("#A6E3A1"), // Green
		Present: lipgloss.Color("#F9E2AF"), // Yellow
		Absent:  lipgloss.Color("#F38BA8"), // Red
		Accent:  lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
	}
}

// Styles contains pre-configured lipgloss styles bound to one renderer.
type Styles struct {
	Correct lipgloss.Style
	Present lipgloss.Style
	Absent  lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Notice  lipgloss.Style
}

// NewStyles creates styles from a theme. A nil renderer means the
// lipgloss default renderer (stdout).
func NewStyles(r *lipgloss.Renderer, theme Theme) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{
		Correct: r.NewStyle().Bold(true).Foreground(theme.Correct),
		Present: r.NewStyle().Bold(true).Foreground(theme.Present),
		Absent:  r.NewStyle().Foreground(theme.Absent),
		Title:   r.NewStyle().Bold(true).Foreground(theme.Accent),
		Muted:   r.NewStyle().Foreground(theme.Muted),
		Notice:  r.NewStyle().Italic(true).Foreground(theme.Absent),
	}
}

// Tile returns the style for a mark. Unknown marks render as absent.
func (s *Styles) Tile(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkCorrect:
		return s.Correct
	case game.MarkPresent:
		return s.Present
	default:
		return s.Absent
	}
}
