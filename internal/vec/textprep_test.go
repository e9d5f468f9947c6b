//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vishal5498/CorporaGoServer/internal/gen"
)

func TestTokenizeOne(t *testing.T) {
	stops := gen.ToSet([]string{"the", "a"})

	tt := tokenizeone("The RIVER, runs; past the mill 99 times!", 2, stops, nil)
	assert.Equal(t, []string{"river", "runs", "past", "mill", "times"}, tt)
}

func TestTokenizeOneMinLength(t *testing.T) {
	tt := tokenizeone("a to the water", 3, map[string]struct{}{}, nil)
	assert.Equal(t, []string{"the", "water"}, tt)
}

func TestTokenizeOneLemmaMap(t *testing.T) {
	lemma := map[string]string{"running": "run", "ran": "run"}

	tt := tokenizeone("running ran runs", 2, map[string]struct{}{}, lemma)
	assert.Equal(t, []string{"run", "run", "runs"}, tt)
}

func TestTokenizeOneLemmaThenStop(t *testing.T) {
	// the stoplist applies to the substituted headword, not the observed form
	lemma := map[string]string{"was": "be"}
	stops := gen.ToSet([]string{"be"})

	tt := tokenizeone("was here", 2, stops, lemma)
	assert.Equal(t, []string{"here"}, tt)
}

func TestEnglishStops(t *testing.T) {
	s := getenglishstops()
	_, the := s["the"]
	assert.True(t, the)

	// keep-list members must survive
	_, good := s["good"]
	assert.False(t, good)
}
