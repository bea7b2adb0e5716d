// Package assets carries the built-in word list so the game can run
// without a network or a local file.
package assets

import (
	_ "embed"
	"strings"
)

// wordsTxt is one word per line; blank lines and lines starting with #
// are ignored.
//
//go:embed words.txt
var wordsTxt string

// WordList returns the built-in words as stored. Normalization is left to
// the caller.
func WordList() []string {
	return entries(wordsTxt)
}

// entries splits a list file into its non-comment lines.
func entries(doc string) []string {
	var out []string
	for line := range strings.Lines(doc) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		out = append(out, line)
	}
	return out
}
