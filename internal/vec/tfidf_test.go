//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishal5498/CorporaGoServer/internal/str"
)

func tfidftestdocs() []str.Document {
	raw := []struct {
		label string
		text  string
	}{
		{"fruit-a", "apple apple banana"},
		{"fruit-b", "apple banana banana"},
		{"navy", "submarine submarine sonar"},
	}

	dd := make([]str.Document, len(raw))
	for i, r := range raw {
		dd[i] = str.Document{ID: i, Label: r.label, Raw: r.text, Tokens: strings.Fields(r.text)}
	}
	return dd
}

func TestFitTfidfEmpty(t *testing.T) {
	_, err := FitTfidf(nil)
	assert.Error(t, err)
}

func TestTfidfSelfSimilarity(t *testing.T) {
	m, err := FitTfidf(tfidftestdocs())
	require.NoError(t, err)

	s, err := m.DocSimilarity(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-9)
}

func TestTfidfDisjointDocumentsAreOrthogonal(t *testing.T) {
	m, err := FitTfidf(tfidftestdocs())
	require.NoError(t, err)

	s, err := m.DocSimilarity(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, 1e-9)
}

func TestTfidfNearestDocuments(t *testing.T) {
	m, err := FitTfidf(tfidftestdocs())
	require.NoError(t, err)

	nd, err := m.NearestDocuments(0, 2)
	require.NoError(t, err)
	require.NotEmpty(t, nd)

	// the other fruit document shares both of its terms; the navy document shares none
	assert.Equal(t, "fruit-b", nd[0].Label)

	_, err = m.NearestDocuments(99, 2)
	assert.Error(t, err)
}

func TestTfidfTopTerms(t *testing.T) {
	m, err := FitTfidf(tfidftestdocs())
	require.NoError(t, err)

	tt, err := m.TopTerms(2, 2)
	require.NoError(t, err)
	require.Len(t, tt, 2)

	// "submarine" appears twice in the document and "sonar" once; both are absent elsewhere
	assert.Equal(t, "submarine", tt[0].Term)
	assert.Greater(t, tt[0].Weight, tt[1].Weight)

	_, err = m.TopTerms(-1, 2)
	assert.Error(t, err)
}
