package game

import (
	"fmt"
	"strings"
)

// Scorer marks each letter of guess against target.
// Implementations must return exactly len(guess) marks.
type Scorer func(guess, target string) []Mark

// Scoring rule names accepted by ScorerByName.
const (
	ScoringPositional = "positional"
	ScoringClassic    = "classic"
)

// ScorerByName resolves a configured scoring rule. The empty name selects
// the positional rule.
func ScorerByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScoringPositional:
		return Score, nil
	case ScoringClassic:
		return ScoreClassic, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScoring, name)
	}
}

// Score is the default scorer. Every position is judged on its own:
//   - same letter at the same position in target → correct
//   - letter occurs anywhere else in target      → present
//   - otherwise                                   → absent
//
// There is no duplicate-letter budgeting: with target "CRANE" both A's in
// "AAAAA" are reported, one correct and the rest present.
func Score(guess, target string) []Mark {
	out := make([]Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		out[i] = markAt(guess, target, i)
	}
	return out
}

// markAt applies Score's rule to a single position.
func markAt(guess, target string, i int) Mark {
	c := guess[i]
	switch {
	case i < len(target) && target[i] == c:
		return MarkCorrect
	case strings.IndexByte(target, c) >= 0:
		return MarkPresent
	default:
		return MarkAbsent
	}
}

// ScoreClassic implements the standard two‑pass Wordle scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (unmatched) target letters.
//
// Pass 2:
//   - For each unmatched guess letter: if a count remains for that letter,
//     mark present and decrement; otherwise mark absent.
func ScoreClassic(guess, target string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	// Letter frequency for the unmatched target positions (A–Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if i < len(target) && guess[i] == target[i] {
			res[i] = MarkCorrect
		} else if i < len(target) {
			if j := idx(target[i]); j >= 0 {
				counts[j]++
			}
		}
	}
	for i := len(guess); i < len(target); i++ {
		if j := idx(target[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25, or -1.
func idx(c byte) int {
	if c < 'A' || c > 'Z' {
		return -1
	}
	return int(c - 'A')
}
