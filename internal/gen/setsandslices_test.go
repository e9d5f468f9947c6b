//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	dd := SetSubtraction(aa, bb)
	assert.Equal(t, []string{"c", "d", "h"}, dd)
}

func TestUnique(t *testing.T) {
	u := Unique([]string{"a", "a", "b", "a"})
	sort.Strings(u)
	assert.Equal(t, []string{"a", "b"}, u)
}

func TestToSet(t *testing.T) {
	s := ToSet([]int{1, 1, 2, 3})
	assert.Len(t, s, 3)
	_, ok := s[2]
	assert.True(t, ok)
}

func TestChunkSlice(t *testing.T) {
	ch := ChunkSlice([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, ch)
}

func TestPurgechars(t *testing.T) {
	assert.Equal(t, "abc", Purgechars(`"'!`, `"a'b!c`))
}
