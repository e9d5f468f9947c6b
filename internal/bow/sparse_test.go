//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishal5498/CorporaGoServer/internal/str"
)

func TestToDense(t *testing.T) {
	sv := SparseVector{{ID: 2, Val: 5}, {ID: 0, Val: 1}}

	dense, err := ToDense(sv, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 5, 0}, dense)
}

func TestToDenseOutOfRange(t *testing.T) {
	_, err := ToDense(SparseVector{{ID: 4, Val: 1}}, 4)
	assert.Error(t, err)

	_, err = ToDense(SparseVector{{ID: -1, Val: 1}}, 4)
	assert.Error(t, err)

	_, err = ToDense(SparseVector{}, 0)
	assert.Error(t, err)
}

func TestToDenseTruncated(t *testing.T) {
	sv := SparseVector{{ID: 0, Val: 1}, {ID: 5, Val: 9}, {ID: 2, Val: 3}}
	assert.Equal(t, []float64{1, 0, 3}, ToDenseTruncated(sv, 3))
}

func TestSparseRoundTrip(t *testing.T) {
	sv := SparseVector{{ID: 1, Val: 2.5}, {ID: 3, Val: 7}, {ID: 9, Val: 0.125}}

	dense, err := ToDense(sv, 10)
	require.NoError(t, err)
	assert.Equal(t, sv, FromDense(dense))
}

func TestNormalize(t *testing.T) {
	sv := SparseVector{{ID: 3, Val: 1}, {ID: 1, Val: 2}, {ID: 3, Val: 4}, {ID: 0, Val: 0}}
	assert.Equal(t, SparseVector{{ID: 1, Val: 2}, {ID: 3, Val: 5}}, Normalize(sv))
}

func TestVocabulary(t *testing.T) {
	dd := []str.Document{
		{ID: 0, Tokens: []string{"river", "runs", "past", "river"}},
		{ID: 1, Tokens: []string{"past", "the", "mill"}},
	}

	v := NewVocabulary(dd)
	require.Equal(t, 5, v.Size())

	// first-seen id order
	assert.Equal(t, 0, v.TokenToID["river"])
	assert.Equal(t, 2, v.TokenToID["past"])
	assert.Equal(t, "mill", v.Token(4))
	assert.Equal(t, "", v.Token(99))

	sv := v.CountVector(dd[0])
	assert.Equal(t, SparseVector{{ID: 0, Val: 2}, {ID: 1, Val: 1}, {ID: 2, Val: 1}}, sv)
}

func TestTermDocumentMatrix(t *testing.T) {
	dd := []str.Document{
		{ID: 0, Tokens: []string{"alpha", "beta", "alpha"}},
		{ID: 1, Tokens: []string{"beta"}},
	}

	v := NewVocabulary(dd)
	m := v.TermDocumentMatrix(dd)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 2.0, m.At(0, 0)) // alpha in doc 0
	assert.Equal(t, 0.0, m.At(0, 1))
	assert.Equal(t, 1.0, m.At(1, 1)) // beta in doc 1
}

func TestTopTerms(t *testing.T) {
	dd := []str.Document{
		{ID: 0, Tokens: []string{"b", "b", "a", "c"}},
		{ID: 1, Tokens: []string{"a", "b"}},
	}

	v := NewVocabulary(dd)
	tt := v.TopTerms(dd, 2)
	require.Len(t, tt, 2)
	assert.Equal(t, TermCount{Term: "b", Count: 3}, tt[0])
	assert.Equal(t, TermCount{Term: "a", Count: 2}, tt[1])
}
