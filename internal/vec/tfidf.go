//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"gonum.org/v1/gonum/mat"
)

//
// TF-IDF: CountVectoriser -> TfidfTransformer; the fitted matrix is terms x documents,
// so document similarity is column similarity
//

// TfidfModel - a fitted tf-idf matrix plus the vocabulary that indexes its rows
type TfidfModel struct {
	Matrix     mat.Matrix
	Vocabulary map[string]int
	Docs       []str.Document
}

// FitTfidf - fit the count+tfidf pipeline over the tokenized documents
func FitTfidf(dd []str.Document) (*TfidfModel, error) {
	const (
		FAIL1 = "FitTfidf(): no documents to fit"
		FAIL2 = "FitTfidf(): the pipeline failed to fit and transform the corpus"
	)

	if len(dd) == 0 {
		return nil, fmt.Errorf(FAIL1)
	}

	corpus := make([]string, len(dd))
	for i, d := range dd {
		corpus[i] = strings.Join(d.Tokens, " ")
	}

	vectoriser := nlp.NewCountVectoriser()
	transformer := nlp.NewTfidfTransformer()
	pipeline := nlp.NewPipeline(vectoriser, transformer)

	m, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL2+": %w", err)
	}

	return &TfidfModel{Matrix: m, Vocabulary: vectoriser.Vocabulary, Docs: dd}, nil
}

// DocSimilarity - cosine similarity between two documents in tf-idf space
func (t *TfidfModel) DocSimilarity(a int, b int) (float64, error) {
	return ColumnSimilarity(t.Matrix, a, b)
}

// DocScore - a document plus its similarity to some reference document
type DocScore struct {
	ID         int     `json:"id"`
	Label      string  `json:"label"`
	Similarity float64 `json:"similarity"`
}

// NearestDocuments - the n documents most similar to document i, best first
func (t *TfidfModel) NearestDocuments(i int, n int) ([]DocScore, error) {
	const (
		FAIL1 = "NearestDocuments(): document %d is out of range [0, %d)"
	)

	if i < 0 || i >= len(t.Docs) {
		return nil, fmt.Errorf(FAIL1, i, len(t.Docs))
	}

	var scores []DocScore
	for j := range t.Docs {
		if j == i {
			continue
		}
		s, err := t.DocSimilarity(i, j)
		if err != nil {
			// an all-stopword document has a zero column; skip it rather than abort the report
			continue
		}
		scores = append(scores, DocScore{ID: t.Docs[j].ID, Label: t.Docs[j].Label, Similarity: s})
	}

	sort.Slice(scores, func(a, b int) bool { return scores[a].Similarity > scores[b].Similarity })

	if n > len(scores) {
		n = len(scores)
	}
	return scores[:n], nil
}

// WeightedTerm - a term plus its tf-idf weight within one document
type WeightedTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// TopTerms - the n heaviest tf-idf terms of document i
func (t *TfidfModel) TopTerms(i int, n int) ([]WeightedTerm, error) {
	const (
		FAIL1 = "TopTerms(): document %d is out of range [0, %d)"
	)

	_, c := t.Matrix.Dims()
	if i < 0 || i >= c {
		return nil, fmt.Errorf(FAIL1, i, c)
	}

	var wt []WeightedTerm
	for term, row := range t.Vocabulary {
		w := t.Matrix.At(row, i)
		if w != 0 {
			wt = append(wt, WeightedTerm{Term: term, Weight: w})
		}
	}

	sort.Slice(wt, func(a, b int) bool {
		if wt[a].Weight == wt[b].Weight {
			return wt[a].Term < wt[b].Term
		}
		return wt[a].Weight > wt[b].Weight
	})

	if n > len(wt) {
		n = len(wt)
	}
	return wt[:n], nil
}
