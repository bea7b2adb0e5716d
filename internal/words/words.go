// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Turn a raw newline-delimited blob into a Dictionary of 5-letter words.
//   - Answer membership questions and pick targets (random or daily).
//
// Normalization (Normalize):
//   • trim, uppercase, drop every rune that is not A–Z.
//   • only results of exactly 5 letters are kept.
//
// A Dictionary is immutable once built and may be shared between sessions.

package words

import (
	"crypto/rand"
	"math/big"
	"slices"
	"strings"
)

// Length is the only word length kept in a Dictionary.
const Length = 5

// Dictionary is a read-only set of uppercase 5-letter words.
type Dictionary struct {
	set  map[string]struct{}
	list []string // sorted, unique
}

// Parse splits raw on newlines and keeps every line that normalizes to a
// 5-letter word.
func Parse(raw string) *Dictionary {
	return FromLines(strings.Split(raw, "\n"))
}

// FromLines builds a Dictionary from individual entries.
func FromLines(lines []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(lines))}
	for _, line := range lines {
		w := Normalize(line)
		if len(w) != Length {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	slices.Sort(d.list)
	return d
}

// Normalize trims, uppercases and strips everything but A–Z. Only ASCII
// letters are kept; non-ASCII runes are dropped before any case mapping.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		default:
			return -1
		}
	}, strings.TrimSpace(s))
}

// Contains reports whether w is in the dictionary. ASCII case is ignored.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] >= 0x80 {
			return false
		}
	}
	_, ok := d.set[strings.ToUpper(w)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.list)
}

// Words returns a sorted copy of every word.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.list)
}

// Random returns a cryptographically random word, or "" if empty.
func (d *Dictionary) Random() string {
	if d.Len() == 0 {
		return ""
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.list))))
	if err != nil {
		return d.list[0]
	}
	return d.list[nBig.Int64()]
}

// Sample returns up to n distinct random words.
func (d *Dictionary) Sample(n int) []string {
	if n <= 0 || d.Len() == 0 {
		return nil
	}
	if n >= d.Len() {
		return d.Words()
	}
	picked := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		w := d.Random()
		if _, ok := picked[w]; ok {
			continue
		}
		picked[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
