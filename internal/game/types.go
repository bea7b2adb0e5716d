// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent), ranked.
//   - Outcome and State: where a session stands.
//   - Guess: an accepted word together with its marks.

package game

const (
	// WordLength is the number of letters in every target and guess.
	WordLength = 5

	// DefaultMaxAttempts is how many accepted guesses a session allows.
	DefaultMaxAttempts = 5
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the target at this position.
//   - "present": letter is in the target at some other position.
//   - "absent":  letter does not occur in the target.
type Mark string

const (
	MarkAbsent  Mark = "absent"
	MarkPresent Mark = "present"
	MarkCorrect Mark = "correct"
)

// Rank orders marks by how much they tell the player.
// correct > present > absent; unknown marks rank below absent.
func (m Mark) Rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	default:
		return 0
	}
}

// Outcome is a pure function of the target and the guess history.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWin        Outcome = "win"
	OutcomeLose       Outcome = "lose"
)

// State is the session's position in its state machine.
// AwaitingGuess is the only non-terminal state.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateWon           State = "won"
	StateLost          State = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Guess is an accepted, scored guess. Word is uppercase A–Z.
type Guess struct {
	Word  string
	Marks []Mark
}

// Solved reports whether every letter was marked correct.
func (g Guess) Solved() bool {
	if len(g.Marks) == 0 {
		return false
	}
	for _, m := range g.Marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

func (g Guess) clone() Guess {
	marks := make([]Mark, len(g.Marks))
	copy(marks, g.Marks)
	return Guess{Word: g.Word, Marks: marks}
}
