//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"testing"

	"github.com/james-bowman/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishal5498/CorporaGoServer/internal/bow"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"gonum.org/v1/gonum/mat"
)

// a hand-built model with a known topics x documents distribution
func fixedmodel() *Model {
	// 3 topics, 4 documents; columns sum to 1
	dot := mat.NewDense(3, 4, []float64{
		0.8, 0.1, 0.1, 0.5,
		0.1, 0.8, 0.2, 0.3,
		0.1, 0.1, 0.7, 0.2,
	})

	// 3 topics, 4 words; no ties within a row
	tow := mat.NewDense(3, 4, []float64{
		0.5, 0.3, 0.1, 0.1,
		0.1, 0.1, 0.6, 0.2,
		0.15, 0.25, 0.2, 0.4,
	})

	vectoriser := &nlp.CountVectoriser{
		Vocabulary: map[string]int{"apple": 0, "banana": 1, "sonar": 2, "torpedo": 3},
	}

	return &Model{
		Topics:          3,
		DocsOverTopics:  dot,
		TopicsOverWords: tow,
		Vectoriser:      vectoriser,
		Docs: []str.Document{
			{ID: 0, Label: "a"},
			{ID: 1, Label: "a"},
			{ID: 2, Label: "b"},
			{ID: 3, Label: "b"},
		},
	}
}

func TestDominantTopic(t *testing.T) {
	m := fixedmodel()
	assert.Equal(t, 0, m.DominantTopic(0))
	assert.Equal(t, 1, m.DominantTopic(1))
	assert.Equal(t, 2, m.DominantTopic(2))
	assert.Equal(t, 0, m.DominantTopic(3))
}

func TestDominantCounts(t *testing.T) {
	m := fixedmodel()
	assert.Equal(t, []int{2, 1, 1}, m.DominantCounts())
}

func TestScaledWeights(t *testing.T) {
	m := fixedmodel()
	w := m.ScaledWeights()

	// topic totals are 1.5, 1.4, 1.1; scaled against 1.5
	require.Len(t, w, 3)
	assert.InDelta(t, 1.0, w[0], 1e-12)
	assert.InDelta(t, 1.4/1.5, w[1], 1e-12)
	assert.InDelta(t, 1.1/1.5, w[2], 1e-12)
}

func TestRepresentatives(t *testing.T) {
	m := fixedmodel()
	reps := m.Representatives()
	require.Len(t, reps, 3)

	assert.Equal(t, 0, reps[0].ID)
	assert.InDelta(t, 0.8, reps[0].Score, 1e-12)
	assert.Equal(t, 1, reps[1].ID)
	assert.Equal(t, 2, reps[2].ID)
	assert.Equal(t, "b", reps[2].Label)
}

func TestDocTopicSparse(t *testing.T) {
	m := fixedmodel()

	sv := m.DocTopicSparse(0)
	assert.Equal(t, bow.SparseVector{{ID: 0, Val: 0.8}, {ID: 1, Val: 0.1}, {ID: 2, Val: 0.1}}, sv)

	// truncation drops the trailing topics
	assert.Equal(t, []float64{0.8, 0.1}, m.DocTopicsDense(0, 2))
}

func TestSortedTopics(t *testing.T) {
	m := fixedmodel()
	tops := m.SortedTopics(2)
	require.Len(t, tops, 3)

	assert.Equal(t, []WordScore{{Word: "apple", Score: 0.5}, {Word: "banana", Score: 0.3}}, tops[0])
	assert.Equal(t, []WordScore{{Word: "sonar", Score: 0.6}, {Word: "torpedo", Score: 0.2}}, tops[1])
}

func TestSummarize(t *testing.T) {
	m := fixedmodel()
	summ := m.Summarize(2)
	require.Len(t, summ, 3)

	// the top words arrive as plain strings, ready for a table cell
	assert.Equal(t, []string{"apple", "banana"}, summ[0].TopWords)
	assert.Equal(t, []string{"sonar", "torpedo"}, summ[1].TopWords)
	assert.Equal(t, []float64{0.5, 0.3}, summ[0].WordScores)

	// DominantShare is already a percentage; 2 of 4 documents belong to topic 0
	assert.InDelta(t, 50.0, summ[0].DominantShare, 1e-12)
	assert.InDelta(t, 25.0, summ[1].DominantShare, 1e-12)
	assert.Equal(t, 2, summ[0].DominantDocs)

	assert.Equal(t, "a", summ[0].BestDocLabel)
	assert.InDelta(t, 0.8, summ[0].BestDocScore, 1e-12)
}

func TestFitLDAErrors(t *testing.T) {
	_, err := FitLDA(3, nil, 1)
	assert.Error(t, err)

	dd := []str.Document{{ID: 0, Tokens: []string{"word"}}}
	_, err = FitLDA(0, dd, 1)
	assert.Error(t, err)
	_, err = FitLDA(1000, dd, 1)
	assert.Error(t, err)
}
