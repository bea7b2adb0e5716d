// internal/game/engine.go
//
// Game engine for a single play-through.
// Responsibilities:
//   - Create sessions around a fixed target word and a dictionary.
//   - Validate and apply guesses (letters only, 5 long, in the dictionary).
//   - Score guesses and keep the letter board current.
//   - Track state transitions: awaiting_guess → won/lost.
//
// Notes:
//   - A Session is not safe for concurrent use; callers give each player
//     their own. The Dictionary may be shared.
//   - The board is cached and merged incrementally; Aggregate over the
//     history always yields the same board.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Dictionary answers membership questions for normalized (uppercase) words.
type Dictionary interface {
	Contains(word string) bool
}

// Option customizes a Session at construction.
type Option func(*Session)

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithScorer replaces the positional Score rule.
func WithScorer(fn Scorer) Option {
	return func(s *Session) {
		if fn != nil {
			s.score = fn
		}
	}
}

// WithID sets the session identifier used in logs.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// Session holds the state of a single game.
type Session struct {
	id          string
	target      string
	dict        Dictionary
	maxAttempts int
	score       Scorer

	guesses []Guess
	board   Board
	state   State
}

// New constructs a session awaiting its first guess.
// target is normalized the same way guesses are.
func New(target string, dict Dictionary, opts ...Option) (*Session, error) {
	t := Normalize(target)
	if utf8.RuneCountInString(t) != WordLength || !isAlpha(t) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	if dict == nil {
		return nil, errors.New("game: nil dictionary")
	}
	s := &Session{
		id:          uuid.NewString(),
		target:      t,
		dict:        dict,
		maxAttempts: DefaultMaxAttempts,
		score:       Score,
		board:       Board{},
		state:       StateAwaitingGuess,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Normalize trims surrounding whitespace and uppercases a–z. Other runes
// are left alone so validation still sees them; Unicode case folding
// would turn letters like ſ into S.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, strings.TrimSpace(raw))
}

// SubmitGuess validates, scores and records a guess.
//
// Validation rules:
//   - Session must not be finished (ErrSessionClosed).
//   - Guess must be letters A–Z only and exactly WordLength long.
//   - Guess must be in the dictionary.
//
// Rejected guesses return a *ValidationError and leave the session as it was.
func (s *Session) SubmitGuess(raw string) (Guess, error) {
	if s.state.Terminal() {
		return Guess{}, ErrSessionClosed
	}
	word := Normalize(raw)
	switch {
	case !isAlpha(word):
		return Guess{}, &ValidationError{Input: raw, Err: ErrNonAlphabetic}
	case utf8.RuneCountInString(word) != WordLength:
		return Guess{}, &ValidationError{Input: raw, Err: ErrInvalidLength}
	case !s.dict.Contains(word):
		return Guess{}, &ValidationError{Input: raw, Err: ErrNotInDictionary}
	}

	g := Guess{Word: word, Marks: s.score(word, s.target)}
	s.guesses = append(s.guesses, g)
	s.board.Merge(g.Word, g.Marks)

	switch s.CheckOutcome() {
	case OutcomeWin:
		s.state = StateWon
	case OutcomeLose:
		s.state = StateLost
	}
	return g.clone(), nil
}

// CheckOutcome reports Win if the latest guess is the target, Lose once
// the attempts are used up, and InProgress otherwise.
func (s *Session) CheckOutcome() Outcome {
	n := len(s.guesses)
	if n > 0 && s.guesses[n-1].Word == s.target {
		return OutcomeWin
	}
	if n >= s.maxAttempts {
		return OutcomeLose
	}
	return OutcomeInProgress
}

// Board returns a copy of the current letter board.
func (s *Session) Board() Board { return s.board.Clone() }

// Guesses returns a copy of the accepted guesses in submission order.
func (s *Session) Guesses() []Guess {
	out := make([]Guess, len(s.guesses))
	for i, g := range s.guesses {
		out[i] = g.clone()
	}
	return out
}

// Words returns the accepted guess words in submission order.
func (s *Session) Words() []string {
	out := make([]string, len(s.guesses))
	for i, g := range s.guesses {
		out[i] = g.Word
	}
	return out
}

func (s *Session) ID() string       { return s.id }
func (s *Session) State() State     { return s.state }
func (s *Session) Target() string   { return s.target }
func (s *Session) Attempts() int    { return len(s.guesses) }
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Remaining is the number of guesses still allowed.
func (s *Session) Remaining() int {
	if s.state.Terminal() {
		return 0
	}
	return s.maxAttempts - len(s.guesses)
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
