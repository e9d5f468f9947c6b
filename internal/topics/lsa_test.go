//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishal5498/CorporaGoServer/internal/str"
)

func lsatestdocs() []str.Document {
	raw := []struct {
		label string
		text  string
	}{
		{"orchard-a", "apple banana orchard harvest apple"},
		{"orchard-b", "banana apple orchard banana"},
		{"fleet-a", "submarine sonar torpedo fleet"},
		{"fleet-b", "fleet submarine torpedo sonar submarine"},
	}

	dd := make([]str.Document, len(raw))
	for i, r := range raw {
		dd[i] = str.Document{ID: i, Label: r.label, Raw: r.text, Tokens: strings.Fields(r.text)}
	}
	return dd
}

func TestFitLSAErrors(t *testing.T) {
	_, err := FitLSA(2, nil)
	assert.Error(t, err)

	dd := lsatestdocs()

	_, err = FitLSA(0, dd)
	assert.Error(t, err)

	_, err = FitLSA(10000, dd)
	assert.Error(t, err)
}

func TestLSASelfSimilarity(t *testing.T) {
	m, err := FitLSA(2, lsatestdocs())
	require.NoError(t, err)

	s, err := m.DocSimilarity(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-9)
}

func TestLSAQueryRanking(t *testing.T) {
	m, err := FitLSA(2, lsatestdocs())
	require.NoError(t, err)

	rr, err := m.Query("apple banana orchard", 4)
	require.NoError(t, err)
	require.NotEmpty(t, rr)

	// the query shares its vocabulary with the orchard documents only
	assert.Contains(t, []string{"orchard-a", "orchard-b"}, rr[0].Label)

	// best first
	for i := 1; i < len(rr); i++ {
		assert.GreaterOrEqual(t, rr[i-1].Similarity, rr[i].Similarity)
	}
}
