//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"sort"

	"github.com/vishal5498/CorporaGoServer/internal/str"
	"gonum.org/v1/gonum/mat"
)

// Vocabulary - a bidirectional token/id mapping; ids are assigned first-seen and are stable for the run
type Vocabulary struct {
	TokenToID map[string]int
	IDToToken []string
}

// NewVocabulary - scan the tokenized documents and assign an id to every distinct token
func NewVocabulary(dd []str.Document) *Vocabulary {
	v := &Vocabulary{TokenToID: make(map[string]int)}
	for _, d := range dd {
		for _, t := range d.Tokens {
			if _, seen := v.TokenToID[t]; !seen {
				v.TokenToID[t] = len(v.IDToToken)
				v.IDToToken = append(v.IDToToken, t)
			}
		}
	}
	return v
}

// Size - the number of distinct tokens
func (v *Vocabulary) Size() int {
	return len(v.IDToToken)
}

// Token - the token for an id; "" when out of range
func (v *Vocabulary) Token(id int) string {
	if id < 0 || id >= len(v.IDToToken) {
		return ""
	}
	return v.IDToToken[id]
}

// CountVector - the sparse word-count vector for one document; unknown tokens are dropped
func (v *Vocabulary) CountVector(d str.Document) SparseVector {
	counts := make(map[int]float64)
	for _, t := range d.Tokens {
		if id, ok := v.TokenToID[t]; ok {
			counts[id] += 1
		}
	}

	sv := make(SparseVector, 0, len(counts))
	for id, c := range counts {
		sv = append(sv, Entry{ID: id, Val: c})
	}
	sort.Slice(sv, func(i, j int) bool { return sv[i].ID < sv[j].ID })
	return sv
}

// CountVectors - CountVector for every document, in document order
func (v *Vocabulary) CountVectors(dd []str.Document) []SparseVector {
	svv := make([]SparseVector, len(dd))
	for i, d := range dd {
		svv[i] = v.CountVector(d)
	}
	return svv
}

// TermDocumentMatrix - a dense terms x documents matrix of raw counts
func (v *Vocabulary) TermDocumentMatrix(dd []str.Document) *mat.Dense {
	m := mat.NewDense(v.Size(), len(dd), nil)
	for j, sv := range v.CountVectors(dd) {
		for _, e := range sv {
			m.Set(e.ID, j, e.Val)
		}
	}
	return m
}

// TermCount - a term's name plus its total count across the corpus
type TermCount struct {
	Term  string  `json:"term"`
	Count float64 `json:"count"`
}

// TopTerms - the n most frequent terms across all documents; row sums of the term-document matrix
func (v *Vocabulary) TopTerms(dd []str.Document, n int) []TermCount {
	m := v.TermDocumentMatrix(dd)

	tc := make([]TermCount, v.Size())
	for id := 0; id < v.Size(); id++ {
		total := float64(0)
		for j := 0; j < len(dd); j++ {
			total += m.At(id, j)
		}
		tc[id] = TermCount{Term: v.IDToToken[id], Count: total}
	}
	sort.Slice(tc, func(i, j int) bool {
		if tc[i].Count == tc[j].Count {
			return tc[i].Term < tc[j].Term
		}
		return tc[i].Count > tc[j].Count
	})

	if n > len(tc) {
		n = len(tc)
	}
	return tc[:n]
}
