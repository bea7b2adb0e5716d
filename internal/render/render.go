// Package render turns scored guesses and the letter board into text.
//
// Callers hand over (text, mark) segments; the Renderer owns every
// formatting decision. Colored output uses lipgloss; when color is off or
// the output is not a terminal, tiers are written as plain markers.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle-term/internal/game"
)

// ColorMode selects between colored and plain output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always and never ("" means auto).
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

// Segment is one piece of output text tagged with the mark it shows.
type Segment struct {
	Text string
	Mark game.Mark
}

// GuessSegments splits a scored guess into one segment per letter.
func GuessSegments(g game.Guess) []Segment {
	out := make([]Segment, 0, len(g.Word))
	for i, r := range g.Word {
		m := game.MarkAbsent
		if i < len(g.Marks) {
			m = g.Marks[i]
		}
		out = append(out, Segment{Text: string(r), Mark: m})
	}
	return out
}

// BoardSegments lists the guessed letters alphabetically with their marks.
func BoardSegments(b game.Board) []Segment {
	letters := b.Letters()
	out := make([]Segment, 0, len(letters))
	for _, r := range letters {
		out = append(out, Segment{Text: string(r), Mark: b[r]})
	}
	return out
}

// Renderer formats segments for one output.
type Renderer struct {
	styles *Styles
	plain  bool
}

// New builds a Renderer for out. In ColorAuto mode colors are used only
// when out is a color-capable terminal (NO_COLOR is honored).
func New(out io.Writer, mode ColorMode) *Renderer {
	if mode == ColorNever {
		return &Renderer{plain: true}
	}
	lr := lipgloss.NewRenderer(out)
	if mode == ColorAlways {
		lr.SetColorProfile(termenv.ANSI256)
	}
	if lr.ColorProfile() == termenv.Ascii {
		return &Renderer{plain: true}
	}
	return &Renderer{styles: NewStyles(lr, DefaultTheme())}
}

// Plain reports whether output carries textual markers instead of color.
func (r *Renderer) Plain() bool { return r.plain }

// Segments renders a run of segments with no separators.
func (r *Renderer) Segments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(r.paint(s))
	}
	return b.String()
}

// Guess renders one scored guess as a row.
func (r *Renderer) Guess(g game.Guess) string {
	return r.Segments(GuessSegments(g))
}

// Letters renders the board line.
func (r *Renderer) Letters(b game.Board) string {
	return "Guessed letters " + r.Segments(BoardSegments(b))
}

// Turn renders every guess so far followed by the board line.
func (r *Renderer) Turn(guesses []game.Guess, b game.Board) string {
	lines := make([]string, 0, len(guesses)+1)
	for _, g := range guesses {
		lines = append(lines, r.Guess(g))
	}
	lines = append(lines, r.Letters(b))
	return strings.Join(lines, "\n")
}

// Result is the closing line for a finished (or abandoned) game.
func (r *Renderer) Result(o game.Outcome, target string) string {
	switch o {
	case game.OutcomeWin:
		return r.Title("You win!")
	case game.OutcomeLose:
		return r.Title("You lose!") + " The word was " + target + "."
	default:
		return "Game over. The word was " + target + "."
	}
}

// Notice renders an error or warning line.
func (r *Renderer) Notice(msg string) string {
	if r.plain {
		return msg
	}
	return r.styles.Notice.Render(msg)
}

// Title renders a heading or the final result.
func (r *Renderer) Title(s string) string {
	if r.plain {
		return s
	}
	return r.styles.Title.Render(s)
}

// Hint renders low-priority help text.
func (r *Renderer) Hint(s string) string {
	if r.plain {
		return s
	}
	return r.styles.Muted.Render(s)
}

func (r *Renderer) paint(s Segment) string {
	if r.plain {
		return plainTile(s)
	}
	return r.styles.Tile(s.Mark).Render(s.Text)
}

// plainTile marks tiers without color: [A] correct, (A) present, " A " absent.
func plainTile(s Segment) string {
	switch s.Mark {
	case game.MarkCorrect:
		return "[" + s.Text + "]"
	case game.MarkPresent:
		return "(" + s.Text + ")"
	default:
		return " " + s.Text + " "
	}
}
