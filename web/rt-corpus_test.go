//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishal5498/CorporaGoServer/internal/mm"
	"github.com/vishal5498/CorporaGoServer/internal/str"
)

// the routes report their hits to the path channel; somebody has to drain it
func TestMain(m *testing.M) {
	go mm.PathInfoHub()
	os.Exit(m.Run())
}

func corpusroutedocs() []str.Document {
	return []str.Document{
		{ID: 0, Label: "alpha", Raw: "Apple, apple, banana!", Tokens: []string{"apple", "apple", "banana"}},
		{ID: 1, Label: "beta", Raw: "Apple and sonar.", Tokens: []string{"apple", "sonar"}},
	}
}

func callroute(t *testing.T, h echo.HandlerFunc, path string, names []string, values []string) str.AnalysisOutputJSON {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	require.NoError(t, h(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var soj str.AnalysisOutputJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &soj))
	return soj
}

func TestRtCorpusVocab(t *testing.T) {
	SetCorpus(corpusroutedocs())

	soj := callroute(t, RtCorpusVocab, "/corpus/vocab/2", []string{"n"}, []string{"2"})

	assert.Equal(t, "Top 2 terms", soj.Title)
	assert.Contains(t, soj.Summary, "3 distinct terms")

	// counts render as whole numbers even though the matrix stores floats
	assert.Contains(t, soj.Found, `<td class="vocabterm">apple</td>`)
	assert.Contains(t, soj.Found, `<td class="vocabcount">3</td>`)
	assert.NotContains(t, soj.Found, "%!d")
}

func TestRtCorpusSummary(t *testing.T) {
	SetCorpus(corpusroutedocs())

	soj := callroute(t, RtCorpusSummary, "/corpus/summary", nil, nil)

	assert.Contains(t, soj.Summary, "2 documents")
	assert.Contains(t, soj.Summary, "5 tokens")
	assert.Contains(t, soj.Found, `<td class="labelname">alpha</td>`)
}

func TestRtCorpusDoc(t *testing.T) {
	SetCorpus(corpusroutedocs())

	soj := callroute(t, RtCorpusDoc, "/corpus/document/1", []string{"id"}, []string{"1"})

	assert.Equal(t, "beta", soj.Title)
	assert.Contains(t, soj.Found, "Apple and sonar.")
	assert.Contains(t, soj.Found, "apple sonar")
}
