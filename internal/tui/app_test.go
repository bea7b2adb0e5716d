package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-term/internal/game"
	"github.com/robalobadob/wordle-term/internal/render"
	"github.com/robalobadob/wordle-term/internal/words"
)

func newTestModel(t *testing.T, cheat bool) (Model, *game.Session) {
	t.Helper()
	dict := words.Parse("crane\ntrace\nslate")
	sess, err := game.New("CRANE", dict, game.WithMaxAttempts(2))
	require.NoError(t, err)
	return New(sess, render.New(&bytes.Buffer{}, render.ColorNever), cheat), sess
}

// typeGuess types word and presses enter.
func typeGuess(t *testing.T, m Model, word string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModel_AcceptsGuess(t *testing.T) {
	m, sess := newTestModel(t, false)
	m = typeGuess(t, m, "trace")

	assert.Equal(t, []string{"TRACE"}, sess.Words())
	assert.Empty(t, m.input.Value(), "input is cleared after submit")
	view := m.View()
	assert.Contains(t, view, " T [R][A](C)[E]")
	assert.Contains(t, view, "Guessed letters")
	assert.Contains(t, view, "Guess 2/2")
}

func TestModel_RejectedGuessShowsNotice(t *testing.T) {
	m, sess := newTestModel(t, false)
	m = typeGuess(t, m, "zzzzz")

	assert.Equal(t, 0, sess.Attempts())
	assert.Contains(t, m.View(), "not a valid guess!")
	assert.Contains(t, m.View(), game.ErrNotInDictionary.Error())

	m = typeGuess(t, m, "crane")
	assert.NotContains(t, m.View(), "not a valid guess!")
}

func TestModel_WinThenAnyKeyQuits(t *testing.T) {
	m, sess := newTestModel(t, false)
	m = typeGuess(t, m, "crane")
	assert.Equal(t, game.StateWon, sess.State())
	assert.Contains(t, m.View(), "You win!")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Lose(t *testing.T) {
	m, sess := newTestModel(t, false)
	m = typeGuess(t, m, "trace")
	m = typeGuess(t, m, "slate")
	assert.Equal(t, game.StateLost, sess.State())
	assert.Contains(t, m.View(), "You lose! The word was CRANE.")
}

func TestModel_EscQuits(t *testing.T) {
	m, _ := newTestModel(t, false)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, next.(Model).Quit())
}

func TestModel_CheatShowsTarget(t *testing.T) {
	m, _ := newTestModel(t, true)
	assert.Contains(t, m.View(), "Hint: CRANE")
}
