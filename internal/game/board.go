package game

import "slices"

// Board holds the best-known mark for every letter that has been guessed.
// Letters that were never typed have no entry.
type Board map[rune]Mark

// Aggregate rebuilds a board from scratch: every occurrence of every letter
// in every guess is scored against target and the highest-ranked mark wins.
// A nil scorer means Score.
func Aggregate(target string, guesses []string, score Scorer) Board {
	if score == nil {
		score = Score
	}
	b := Board{}
	for _, g := range guesses {
		b.Merge(g, score(g, target))
	}
	return b
}

// Merge folds one scored word into the board. A letter's mark is only ever
// raised, so merging guesses one at a time gives the same board as
// Aggregate over the whole history, in any order.
func (b Board) Merge(word string, marks []Mark) {
	for i := 0; i < len(word) && i < len(marks); i++ {
		r := rune(word[i])
		if cur, ok := b[r]; !ok || marks[i].Rank() > cur.Rank() {
			b[r] = marks[i]
		}
	}
}

// Status returns the mark recorded for r, if r has been guessed.
func (b Board) Status(r rune) (Mark, bool) {
	m, ok := b[r]
	return m, ok
}

// Letters returns the guessed letters in alphabetical order.
func (b Board) Letters() []rune {
	out := make([]rune, 0, len(b))
	for r := range b {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Clone returns an independent copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for r, m := range b {
		out[r] = m
	}
	return out
}
