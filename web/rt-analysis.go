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
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vishal5498/CorporaGoServer/internal/gen"
	"github.com/vishal5498/CorporaGoServer/internal/graphing"
	"github.com/vishal5498/CorporaGoServer/internal/lnch"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vec"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

//
// THE ANALYSIS ROUTES: every route returns an AnalysisOutputJSON
//

// RtLdaTopics - fit a topic model with :k topics and report the composition of each topic
func RtLdaTopics(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtLdaTopics()") })

	const (
		MSG1 = "Preparing the corpus... (part 1 of 3)"
		MSG2 = "Fitting the topic model... (part 2 of 3)"
		MSG3 = "Building the tables... (part 3 of 3)"
		SUMM = `<div id="searchsummary">%d topics fitted against %d documents<br>
		<span class="small">(%ss)</span></div>`
		THH = `
		<table>
		<tr>
			<th class="topictable">topic</th>
			<th class="topictable">top words</th>
			<th class="topictable">dominant in</th>
			<th class="topictable">best document</th>
			<th class="topictable">weight</th>
		</tr>`
		TRR = `
		<tr>
			<td class="topicnum">%d</td>
			<td class="topicwords">%s</td>
			<td class="topicdocs">%d (%.1f%%)</td>
			<td class="topicbest">%s (%.3f)</td>
			<td class="topicweight">%.3f</td>
		</tr>`
		TCL = `</table>`
	)

	start := time.Now()

	k := lnch.Config.LdaTopics
	if kk, err := strconv.Atoi(c.Param("k")); err == nil {
		k = kk
	}

	id := registerjob(c, "lda")
	defer deletejob(id)

	setjobstage(id, MSG1)
	setjobsummary(id, fmt.Sprintf("%d topics", k))

	setjobstage(id, MSG2)
	m, err := getldamodel(k, lnch.Config.WorkerCount)
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	setjobstage(id, MSG3)

	summ := m.Summarize(vv.TOPTFIDFTERMS)
	var sb strings.Builder
	sb.WriteString(THH)
	for _, s := range summ {
		sb.WriteString(fmt.Sprintf(TRR, s.Topic+1, strings.Join(s.TopWords, ", "), s.DominantDocs,
			s.DominantShare, s.BestDocLabel, s.BestDocScore, s.ScaledWeight))
	}
	sb.WriteString(TCL)

	img := ""
	if lnch.Config.LdaGraph {
		// the scatter and the weight bar are independent fragments; ship them stacked
		img = graphing.TopicScatter(m.Topics, m.DocsOverTopics, m.Docs, *lnch.Config)
		img += graphing.TopicWeightBar(m.ScaledWeights(), *lnch.Config)
	}

	soj := str.AnalysisOutputJSON{
		Title:   fmt.Sprintf("%d topics", k),
		Summary: fmt.Sprintf(SUMM, k, len(m.Docs), fmt.Sprintf("%.3f", time.Since(start).Seconds())),
		Found:   sb.String(),
		Image:   img,
	}

	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}

// RtLsaQuery - build a semantic index with :k dimensions and rank the documents against "?query=..."
func RtLsaQuery(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtLsaQuery()") })

	const (
		MSG1 = "Building the semantic index... (part 1 of 2)"
		MSG2 = "Ranking the documents... (part 2 of 2)"
		SUMM = `<div id="searchsummary">Documents most like »%s«<br>
		<span class="small">(%ss)</span></div>`
		THH = `
		<table>
		<tr>
			<th class="lsatable">document</th>
			<th class="lsatable">similarity</th>
		</tr>`
		TRR = `
		<tr>
			<td class="lsadoc">%s</td>
			<td class="lsascore">%.4f</td>
		</tr>`
		TCL    = `</table>`
		NOQ    = "the request sent no query; add '?query=...' to the url"
		MAXHIT = 10
	)

	start := time.Now()

	k := vv.LSAMAXDIMENSIONS
	if kk, err := strconv.Atoi(c.Param("k")); err == nil {
		k = kk
	}

	q := gen.Purgechars(lnch.Config.BadChars, c.QueryParam("query"))
	if q == "" {
		return emptyanalysisreturn(c, NOQ)
	}

	id := registerjob(c, "lsa")
	defer deletejob(id)

	setjobstage(id, MSG1)
	m, err := getlsamodel(k)
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	setjobstage(id, MSG2)
	rr, err := m.Query(q, MAXHIT)
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	var sb strings.Builder
	sb.WriteString(THH)
	for _, r := range rr {
		sb.WriteString(fmt.Sprintf(TRR, r.Label, r.Similarity))
	}
	sb.WriteString(TCL)

	soj := str.AnalysisOutputJSON{
		Title:   fmt.Sprintf("Semantic query: »%s«", q),
		Summary: fmt.Sprintf(SUMM, q, fmt.Sprintf("%.3f", time.Since(start).Seconds())),
		Found:   sb.String(),
	}

	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}

// RtNeighbors - train embeddings if needed and graph the nearest neighbors of :word
func RtNeighbors(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtNeighbors()") })

	const (
		MSG1 = "Training the model... (part 1 of 3)"
		MSG2 = "Searching for neighbors... (part 2 of 3)"
		MSG3 = "Building the graph... (part 3 of 3)"
		SUMM = `<div id="searchsummary">Nearest neighbors of »%s« per the %s model<br>
		<span class="small">(%ss)</span></div>`
		THH = `
		<table>
		<tr>
			<th class="neighbortable">rank</th>
			<th class="neighbortable">word</th>
			<th class="neighbortable">similarity</th>
		</tr>`
		TRR = `
		<tr>
			<td class="neighborrank">%d</td>
			<td class="neighborword">%s</td>
			<td class="neighborscore">%.4f</td>
		</tr>`
		TCL  = `</table>`
		NOWD = "the request sent no word to search for"
		MISS = "»%s« is not in the model's vocabulary"
	)

	start := time.Now()

	word := gen.Purgechars(lnch.Config.BadChars, c.Param("word"))
	word = strings.ToLower(word)
	if word == "" {
		return emptyanalysisreturn(c, NOWD)
	}

	id := registerjob(c, "neighbors")
	defer deletejob(id)

	setjobstage(id, MSG1)
	setjobsummary(id, word)
	embs, err := getembeddings(lnch.Config.VectorModel)
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	if _, err = vec.WordVector(embs, word); err != nil {
		return emptyanalysisreturn(c, fmt.Sprintf(MISS, word))
	}

	setjobstage(id, MSG2)
	nn, err := vec.NearestNeighbors(word, embs, lnch.Config.VectorNeighb, lnch.Config.VectorWebExt)
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	setjobstage(id, MSG3)

	var sb strings.Builder
	sb.WriteString(THH)
	for _, n := range nn[word] {
		sb.WriteString(fmt.Sprintf(TRR, n.Rank, n.Word, n.Similarity))
	}
	sb.WriteString(TCL)

	settings := fmt.Sprintf("%s model; %d neighbors", lnch.Config.VectorModel, lnch.Config.VectorNeighb)
	img := graphing.NeighborGraph(word, settings, nn, *lnch.Config)

	soj := str.AnalysisOutputJSON{
		Title:   fmt.Sprintf("Neighbors of »%s«", word),
		Summary: fmt.Sprintf(SUMM, word, lnch.Config.VectorModel, fmt.Sprintf("%.3f", time.Since(start).Seconds())),
		Found:   sb.String(),
		Image:   img,
	}

	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}

// RtTfidfTerms - the highest scoring terms in document :id plus the documents most like it
func RtTfidfTerms(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtTfidfTerms()") })

	const (
		SUMM = `<div id="searchsummary">Weighted vocabulary for <span class="foundwork">%s</span><br>
		<span class="small">(%ss)</span></div>`
		THH = `
		<table>
		<tr>
			<th class="tfidftable">term</th>
			<th class="tfidftable">weight</th>
		</tr>`
		TRR = `
		<tr>
			<td class="tfidfterm">%s</td>
			<td class="tfidfweight">%.4f</td>
		</tr>`
		TNB = `
		<tr>
			<td class="tfidfterm">%s</td>
			<td class="tfidfweight">%.4f</td>
		</tr>`
		TNH = `
		<table>
		<tr>
			<th class="tfidftable">most similar document</th>
			<th class="tfidftable">similarity</th>
		</tr>`
		TCL    = `</table>`
		MAXHIT = 5
	)

	start := time.Now()

	doc, err := parsedocid(c.Param("id"))
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	id := registerjob(c, "tfidf")
	defer deletejob(id)

	m, err := gettfidfmodel()
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	tt, err := m.TopTerms(doc, vv.TOPTFIDFTERMS)
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	var sb strings.Builder
	sb.WriteString(THH)
	for _, t := range tt {
		sb.WriteString(fmt.Sprintf(TRR, t.Term, t.Weight))
	}
	sb.WriteString(TCL)

	nd, err := m.NearestDocuments(doc, MAXHIT)
	if err == nil && len(nd) != 0 {
		sb.WriteString(TNH)
		for _, n := range nd {
			sb.WriteString(fmt.Sprintf(TNB, n.Label, n.Similarity))
		}
		sb.WriteString(TCL)
	}

	lb := AllDocuments[doc].Label

	soj := str.AnalysisOutputJSON{
		Title:   fmt.Sprintf("Key terms in '%s'", lb),
		Summary: fmt.Sprintf(SUMM, lb, fmt.Sprintf("%.3f", time.Since(start).Seconds())),
		Found:   sb.String(),
	}

	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}

// RtSimilarity - the cosine similarity between documents :a and :b in weighted term space
func RtSimilarity(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtSimilarity()") })

	const (
		SUMM = `<div id="searchsummary"><span class="foundwork">%s</span> vs <span class="foundwork">%s</span></div>`
		FND  = `<div class="similarityscore">cosine similarity: %.4f</div>`
	)

	a, err := parsedocid(c.Param("a"))
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}
	b, err := parsedocid(c.Param("b"))
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	m, err := gettfidfmodel()
	if err != nil {
		return emptyanalysisreturn(c, err.Error())
	}

	sim, err := m.DocSimilarity(a, b)
	if err != nil {
		// an empty document has no direction to compare; report that rather than faking a zero
		return emptyanalysisreturn(c, err.Error())
	}

	la := AllDocuments[a].Label
	lb := AllDocuments[b].Label

	soj := str.AnalysisOutputJSON{
		Title:   fmt.Sprintf("'%s' vs '%s'", la, lb),
		Summary: fmt.Sprintf(SUMM, la, lb),
		Found:   fmt.Sprintf(FND, sim),
	}

	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}
