package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength rejects a guess that is not WordLength letters long.
	ErrInvalidLength = errors.New("guess must be exactly 5 letters")

	// ErrNonAlphabetic rejects a guess containing anything but A–Z.
	ErrNonAlphabetic = errors.New("guess must contain only letters")

	// ErrNotInDictionary rejects a well-formed word the dictionary lacks.
	ErrNotInDictionary = errors.New("not in word list")

	// ErrSessionClosed is returned for guesses submitted after a win or loss.
	ErrSessionClosed = errors.New("game finished")

	// ErrInvalidTarget is returned by New for a malformed target word.
	ErrInvalidTarget = errors.New("target must be 5 letters")

	// ErrUnknownScoring is returned by ScorerByName.
	ErrUnknownScoring = errors.New("unknown scoring rule")
)

// ValidationError reports a rejected guess. The session is unchanged and
// the player should be prompted again.
type ValidationError struct {
	Input string // the raw input as submitted
	Err   error  // one of ErrInvalidLength, ErrNonAlphabetic, ErrNotInDictionary
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid guess %q: %v", e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
