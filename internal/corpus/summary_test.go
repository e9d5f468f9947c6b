//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishal5498/CorporaGoServer/internal/str"
)

func TestSummarize(t *testing.T) {
	dd := []str.Document{
		{ID: 0, Label: "a", Tokens: []string{"one", "two", "three"}},
		{ID: 1, Label: "a", Tokens: []string{"four"}},
		{ID: 2, Label: "b", Tokens: []string{"five", "six"}},
	}

	s := Summarize(dd)
	assert.Equal(t, 3, s.Documents)
	assert.Equal(t, 6, s.Tokens)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, s.Labels)
	assert.Equal(t, []string{"a", "b"}, s.SortedLabels())
}

func TestFilterByLabel(t *testing.T) {
	dd := []str.Document{
		{ID: 0, Label: "a"},
		{ID: 1, Label: "b"},
		{ID: 2, Label: "a"},
	}

	f := FilterByLabel(dd, []string{"a"})
	require.Len(t, f, 2)
	assert.Equal(t, 0, f[0].ID)
	assert.Equal(t, 2, f[1].ID)

	// no labels means no filtering
	assert.Len(t, FilterByLabel(dd, nil), 3)
}

func TestDropShortDocuments(t *testing.T) {
	dd := []str.Document{
		{ID: 0, Tokens: []string{"one"}},
		{ID: 1, Tokens: []string{"one", "two"}},
	}

	f := DropShortDocuments(dd, 2)
	require.Len(t, f, 1)
	assert.Equal(t, 1, f[0].ID)
}

func TestFromDirectory(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "letters")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "first.txt"), []byte("dear sir"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "loose.txt"), []byte("stray note"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ignore.md"), []byte("not a document"), 0644))

	dd := FromDirectory(root)
	require.Len(t, dd, 2)

	// sorted load order: root/letters/first.txt precedes root/loose.txt
	assert.Equal(t, "letters", dd[0].Label)
	assert.Equal(t, "dear sir", dd[0].Raw)
	assert.Equal(t, "loose", dd[1].Label)
}
