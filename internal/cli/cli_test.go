package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-term/internal/words"
)

// run executes a fresh root command with stdin set to input.
func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func dictFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCmd(t *testing.T) {
	original := version
	version = "test-version-1.0.0"
	defer func() { version = original }()

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "wordle version test-version-1.0.0\n", out)
}

func TestPlay_Win(t *testing.T) {
	path := dictFile(t, "crane\n")

	out, _, err := run(t, "crane\n", "--words", path, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter your guess (1/5).")
	assert.Contains(t, out, "[C][R][A][N][E]")
	assert.Contains(t, out, "You win!")
}

func TestPlay_LoseWithAttemptsFlag(t *testing.T) {
	path := dictFile(t, "crane\ntrace\n")

	// the target is random; with one attempt CRANE either wins or loses to TRACE
	out, _, err := run(t, "crane\ntrace\n", "--words", path, "--color", "never", "--attempts", "1", "--cheat")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter your guess (1/1).")
	assert.NotContains(t, out, "(2/1)")
	assert.True(t,
		strings.Contains(out, "You win!") || strings.Contains(out, "You lose! The word was TRACE."),
		out)
}

func TestPlay_RejectsThenAccepts(t *testing.T) {
	path := dictFile(t, "crane\n")

	out, _, err := run(t, "cr4ne\nslate\ncrane\n", "--words", path, "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "not a valid guess!"))
	assert.Contains(t, out, "Enter your guess (1/5).")
	assert.NotContains(t, out, "Enter your guess (2/5).")
	assert.Contains(t, out, "You win!")
}

func TestPlay_InputClosedIsNotAnError(t *testing.T) {
	path := dictFile(t, "crane\n")

	out, _, err := run(t, "", "--words", path, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Game over. The word was CRANE.")
}

func TestPlay_TUIFallsBackWithoutTerminal(t *testing.T) {
	path := dictFile(t, "crane\n")

	out, stderr, err := run(t, "crane\n", "--words", path, "--color", "never", "--tui")
	require.NoError(t, err)
	assert.Contains(t, out, "You win!")
	assert.Contains(t, stderr, "falling back to line mode")
}

func TestPlay_DailyIsStable(t *testing.T) {
	path := dictFile(t, "crane\ntrace\nslate\nbrick\nplumb\n")
	original := now
	now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	defer func() { now = original }()

	dict, err := words.Load(t.Context(), path, nil)
	require.NoError(t, err)
	want, _ := dict.Daily(now(), "local_dev_salt")

	out, _, err := run(t, "", "--words", path, "--color", "never", "--daily")
	require.NoError(t, err)
	assert.Contains(t, out, "The word was "+want+".")
}

func TestPlay_DictionaryUnavailable(t *testing.T) {
	_, _, err := run(t, "", "--words", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, words.ErrDictionaryUnavailable)

	_, _, err = run(t, "", "--words", dictFile(t, "cat\nelephant\n"))
	assert.ErrorIs(t, err, words.ErrDictionaryUnavailable)
}

func TestPlay_InvalidFlags(t *testing.T) {
	path := dictFile(t, "crane\n")

	_, _, err := run(t, "", "--words", path, "--scoring", "fuzzy")
	assert.ErrorContains(t, err, "game.scoring")

	_, _, err = run(t, "", "--words", path, "--attempts", "0")
	assert.ErrorContains(t, err, "game.max_attempts")

	_, _, err = run(t, "", "extra-arg")
	assert.Error(t, err)
}

func TestPlay_ConfigFile(t *testing.T) {
	path := dictFile(t, "crane\n")
	cfgPath := filepath.Join(t.TempDir(), "wordle.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[words]
source = "`+filepath.ToSlash(path)+`"

[game]
max_attempts = 2
scoring = "classic"

[ui]
color = "never"
`), 0o600))

	out, _, err := run(t, "crane\n", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Enter your guess (1/2).")
	assert.Contains(t, out, "You win!")
}

func TestWordsCmd(t *testing.T) {
	path := dictFile(t, "crane\ntrace\nslate\ncat\n")

	out, _, err := run(t, "", "words", "--words", path)
	require.NoError(t, err)
	assert.Equal(t, "3 words from "+path+"\n", out)

	out, _, err = run(t, "", "words", "--words", path, "--sample", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, w := range lines[1:] {
		assert.Contains(t, []string{"CRANE", "TRACE", "SLATE"}, w)
	}
	assert.NotEqual(t, lines[1], lines[2])

	_, _, err = run(t, "", "words", "--words", path, "--sample", "-1")
	assert.Error(t, err)
}

func TestWordsCmd_Embedded(t *testing.T) {
	out, _, err := run(t, "", "words", "--words", "embedded")
	require.NoError(t, err)
	assert.Contains(t, out, "words from embedded")
}

func TestExecute_ReportsErrorWithLoggingDisabled(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--log-level", "disabled", "--words", filepath.Join(t.TempDir(), "missing.txt")})

	code := execute(t.Context(), cmd)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wordle: dictionary unavailable")
	assert.Empty(t, stdout.String())
}

func TestExecute_SuccessIsZero(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	assert.Equal(t, 0, execute(t.Context(), cmd))
	assert.Contains(t, stdout.String(), "wordle version")
}

func TestPlay_OversizedLineDoesNotEndGame(t *testing.T) {
	path := dictFile(t, "crane\n")

	out, _, err := run(t, strings.Repeat("x", 70*1024)+"\ncrane\n", "--words", path, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "not a valid guess!")
	assert.Contains(t, out, "You win!")
}
