//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vec"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
	"gonum.org/v1/gonum/mat"
)

//
// LSA: CountVectoriser -> TfidfTransformer -> TruncatedSVD; the reduced matrix is dimensions x documents
//

// LSAModel - a fitted latent semantic analysis projection
type LSAModel struct {
	Dimensions int
	Matrix     mat.Matrix // dimensions x documents
	Pipeline   *nlp.Pipeline
	Docs       []str.Document
}

// FitLSA - project the corpus into k latent dimensions
func FitLSA(k int, dd []str.Document) (*LSAModel, error) {
	const (
		FAIL1 = "FitLSA(): no documents to model"
		FAIL2 = "FitLSA(): dimension count %d is out of range [1, %d]"
		FAIL3 = "FitLSA(): the pipeline failed to fit and transform the corpus"
	)

	if len(dd) == 0 {
		return nil, fmt.Errorf(FAIL1)
	}
	if k < 1 || k > vv.LSAMAXDIMENSIONS {
		return nil, fmt.Errorf(FAIL2, k, vv.LSAMAXDIMENSIONS)
	}

	corpus := make([]string, len(dd))
	for i, d := range dd {
		corpus[i] = strings.Join(d.Tokens, " ")
	}

	vectoriser := nlp.NewCountVectoriser()
	transformer := nlp.NewTfidfTransformer()
	reducer := nlp.NewTruncatedSVD(k)
	pipeline := nlp.NewPipeline(vectoriser, transformer, reducer)

	m, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL3+": %w", err)
	}

	return &LSAModel{Dimensions: k, Matrix: m, Pipeline: pipeline, Docs: dd}, nil
}

// QueryResult - a document ranked against a free-text query
type QueryResult struct {
	ID         int     `json:"id"`
	Label      string  `json:"label"`
	Similarity float64 `json:"similarity"`
}

// Query - project a free-text query into the latent space and rank every document against it
func (l *LSAModel) Query(q string, n int) ([]QueryResult, error) {
	const (
		FAIL1 = "Query(): failed to project the query into the latent space"
	)

	qm, err := l.Pipeline.Transform(q)
	if err != nil {
		return nil, fmt.Errorf(FAIL1+": %w", err)
	}

	var qd mat.Dense
	qd.CloneFrom(qm)

	var dm mat.Dense
	dm.CloneFrom(l.Matrix)

	var rr []QueryResult
	for j := range l.Docs {
		s, err := vec.CosineSimilarity(colToSlice(&qd, 0), colToSlice(&dm, j))
		if err != nil {
			// a zero column means the query or the document shares no terms with the model
			continue
		}
		rr = append(rr, QueryResult{ID: l.Docs[j].ID, Label: l.Docs[j].Label, Similarity: s})
	}

	sort.Slice(rr, func(a, b int) bool { return rr[a].Similarity > rr[b].Similarity })

	if n > len(rr) {
		n = len(rr)
	}
	return rr[:n], nil
}

// DocSimilarity - cosine similarity between two documents in the latent space
func (l *LSAModel) DocSimilarity(a int, b int) (float64, error) {
	return vec.ColumnSimilarity(l.Matrix, a, b)
}

func colToSlice(m *mat.Dense, j int) []float64 {
	r, _ := m.Dims()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = m.At(i, j)
	}
	return out
}
