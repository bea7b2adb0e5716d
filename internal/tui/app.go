// internal/tui/app.go
//
// Interactive terminal UI for a game session.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: the session plus the text input
// 2. Update: key presses submit guesses to the session
// 3. View: the same rows and letter board the line console prints
//
// The session is only touched from Update, so no locking is needed.

package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-term/internal/game"
	"github.com/robalobadob/wordle-term/internal/render"
)

// Model is the bubbletea model for one game.
type Model struct {
	sess   *game.Session
	input  textinput.Model
	r      *render.Renderer
	cheat  bool
	notice string
	quit   bool
}

// New creates the model. r formats tiles; it should be built for the
// program's output.
func New(sess *game.Session, r *render.Renderer, cheat bool) Model {
	ti := textinput.New()
	ti.Placeholder = "guess"
	ti.CharLimit = game.WordLength
	ti.Width = game.WordLength + 1
	ti.Prompt = "> "
	ti.Focus()

	return Model{sess: sess, input: ti, r: r, cheat: cheat}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
//
//	Enter  - submit the current guess
//	Esc    - quit (also ctrl+c)
//	any key once the game is over - quit
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Type == tea.KeyCtrlC || key.Type == tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case m.sess.State().Terminal():
		return m, tea.Quit
	case key.Type == tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	m.input.Reset()

	g, err := m.sess.SubmitGuess(raw)
	var ve *game.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Debug().Str("session", m.sess.ID()).Str("input", raw).Err(ve.Err).Msg("guess rejected")
		m.notice = "not a valid guess! (" + ve.Err.Error() + ")"
		return m, nil
	case err != nil:
		m.notice = err.Error()
		return m, nil
	}

	log.Debug().Str("session", m.sess.ID()).Str("guess", g.Word).Int("attempt", m.sess.Attempts()).Msg("guess accepted")
	m.notice = ""
	if m.sess.State().Terminal() {
		m.input.Blur()
	}
	return m, nil
}

// View renders the board.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.r.Title("Wordle"))
	b.WriteString("\n\n")

	if len(m.sess.Guesses()) > 0 {
		b.WriteString(m.r.Turn(m.sess.Guesses(), m.sess.Board()))
		b.WriteString("\n\n")
	}

	if m.sess.State().Terminal() {
		b.WriteString(m.r.Result(m.sess.CheckOutcome(), m.sess.Target()))
		b.WriteString("\n")
		b.WriteString(m.r.Hint("press any key to exit"))
		b.WriteString("\n")
		return b.String()
	}

	status := fmt.Sprintf("Guess %d/%d", m.sess.Attempts()+1, m.sess.MaxAttempts())
	if m.cheat {
		status += "  Hint: " + m.sess.Target()
	}
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.r.Notice(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.r.Hint("enter: submit • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Quit reports whether the player left before the game ended.
func (m Model) Quit() bool { return m.quit }

// Run drives the program until the player quits and returns the outcome.
func Run(sess *game.Session, r *render.Renderer, cheat bool, in io.Reader, out io.Writer) (game.Outcome, error) {
	p := tea.NewProgram(New(sess, r, cheat), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return sess.CheckOutcome(), fmt.Errorf("run tui: %w", err)
	}
	return sess.CheckOutcome(), nil
}
