//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vishal5498/CorporaGoServer/internal/bow"
	"github.com/vishal5498/CorporaGoServer/internal/corpus"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RtCorpusSummary - report the shape of the loaded collection
func RtCorpusSummary(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtCorpusSummary()") })

	const (
		SUMM = `<div id="searchsummary">%s documents, %s tokens, %s characters</div>`
		THH  = `
		<table>
		<tr>
			<th class="labeltable">label</th>
			<th class="labeltable">documents</th>
		</tr>`
		TRR = `
		<tr>
			<td class="labelname">%s</td>
			<td class="labelcount">%s</td>
		</tr>`
		TCL = `</table>`
	)

	s := corpus.Summarize(AllDocuments)

	// big corpora produce big numbers; commas help
	p := message.NewPrinter(language.English)

	var sb strings.Builder
	sb.WriteString(THH)
	for _, l := range s.SortedLabels() {
		sb.WriteString(fmt.Sprintf(TRR, l, p.Sprintf("%d", s.Labels[l])))
	}
	sb.WriteString(TCL)

	soj := str.AnalysisOutputJSON{
		Title:   fmt.Sprintf("%s collection", vv.SHORTNAME),
		Summary: fmt.Sprintf(SUMM, p.Sprintf("%d", s.Documents), p.Sprintf("%d", s.Tokens), p.Sprintf("%d", s.Chars)),
		Found:   sb.String(),
	}

	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}

// RtCorpusVocab - the :n commonest terms in the collection after normalization
func RtCorpusVocab(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtCorpusVocab()") })

	const (
		SUMM = `<div id="searchsummary">%s distinct terms in the collection</div>`
		THH  = `
		<table>
		<tr>
			<th class="vocabtable">term</th>
			<th class="vocabtable">count</th>
		</tr>`
		TRR = `
		<tr>
			<td class="vocabterm">%s</td>
			<td class="vocabcount">%s</td>
		</tr>`
		TCL = `</table>`
	)

	n := vv.TOPVOCABCOUNT
	if nn, err := strconv.Atoi(c.Param("n")); err == nil && nn > 0 {
		n = nn
	}

	v := bow.NewVocabulary(AllDocuments)
	tt := v.TopTerms(AllDocuments, n)

	p := message.NewPrinter(language.English)

	var sb strings.Builder
	sb.WriteString(THH)
	for _, t := range tt {
		sb.WriteString(fmt.Sprintf(TRR, t.Term, p.Sprintf("%d", int(t.Count))))
	}
	sb.WriteString(TCL)

	soj := str.AnalysisOutputJSON{
		Title:   fmt.Sprintf("Top %d terms", n),
		Summary: fmt.Sprintf(SUMM, p.Sprintf("%d", v.Size())),
		Found:   sb.String(),
	}

	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}

// RtCorpusDoc - the raw and normalized text of document :id
func RtCorpusDoc(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtCorpusDoc()") })

	const (
		SUMM = `<div id="searchsummary"><span class="foundwork">%s</span>: %d tokens</div>`
		FND  = `<div class="doctext">%s</div><div class="doctokens">%s</div>`
	)

	doc, err := parsedocid(c.Param("id"))
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	d := AllDocuments[doc]

	soj := str.AnalysisOutputJSON{
		Title:   d.Label,
		Summary: fmt.Sprintf(SUMM, d.Label, len(d.Tokens)),
		Found:   fmt.Sprintf(FND, d.Raw, d.Text()),
	}

	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}
