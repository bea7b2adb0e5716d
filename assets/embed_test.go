package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordList_SkipsComments(t *testing.T) {
	list := WordList()
	require.NotEmpty(t, list)
	for _, w := range list {
		assert.False(t, strings.HasPrefix(w, "#"), w)
		assert.Len(t, w, 5, w)
	}
	assert.Contains(t, list, "crane")
}

func TestEntries(t *testing.T) {
	doc := "# header\ncrane\r\n\n  slate  \n#trace\nacorn"
	assert.Equal(t, []string{"crane", "slate", "acorn"}, entries(doc))
	assert.Empty(t, entries(""))
}
