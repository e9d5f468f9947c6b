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
	"github.com/vishal5498/CorporaGoServer/internal/bow"
	"github.com/vishal5498/CorporaGoServer/internal/lnch"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
	"gonum.org/v1/gonum/mat"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go
//DefaultLDA = nlp.LatentDirichletAllocation{
//	Iterations:                    1000,
//	PerplexityTolerance:           1e-2,
//	PerplexityEvaluationFrequency: 30,
//	BatchSize:                     100,
//	K:                             k,
//	...
//}

// Model - a fitted LDA topic model plus everything needed to read it back out
type Model struct {
	Topics          int
	DocsOverTopics  mat.Matrix // topics x documents
	TopicsOverWords mat.Matrix // topics x words
	Vectoriser      *nlp.CountVectoriser
	Docs            []str.Document
}

// FitLDA - fit a Latent Dirichlet Allocation model over the tokenized documents
func FitLDA(ntopics int, dd []str.Document, workers int) (*Model, error) {
	const (
		FAIL1 = "FitLDA(): no documents to model"
		FAIL2 = "FitLDA(): topic count %d is out of range [1, %d]"
		FAIL3 = "FitLDA(): failed to model topics for the documents"
	)

	if len(dd) == 0 {
		return nil, fmt.Errorf(FAIL1)
	}
	if ntopics < 1 || ntopics > vv.LDAMAXTOPICS {
		return nil, fmt.Errorf(FAIL2, ntopics, vv.LDAMAXTOPICS)
	}

	corpus := make([]string, len(dd))
	for i, d := range dd {
		corpus[i] = strings.Join(d.Tokens, " ")
	}

	vectoriser := nlp.NewCountVectoriser()

	lda := nlp.NewLatentDirichletAllocation(ntopics)
	lda.Processes = workers
	lda.Iterations = vv.LDAITER
	lda.TransformationPasses = vv.LDAXFORMPASSES

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL3+": %w", err)
	}

	return &Model{
		Topics:          ntopics,
		DocsOverTopics:  docsOverTopics,
		TopicsOverWords: lda.Components(),
		Vectoriser:      vectoriser,
		Docs:            dd,
	}, nil
}

// WordScore - a word and its weight within one topic
type WordScore struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// SortedTopics - the top words for every topic, heaviest first
func (m *Model) SortedTopics(top int) map[int][]WordScore {
	tr, tc := m.TopicsOverWords.Dims()

	vocab := make([]string, len(m.Vectoriser.Vocabulary))
	for k, v := range m.Vectoriser.Vocabulary {
		vocab[v] = k
	}

	if top > tc {
		top = tc
	}

	tops := make(map[int][]WordScore)
	for topic := 0; topic < tr; topic++ {
		tss := make([]WordScore, tc)
		for word := 0; word < tc; word++ {
			tss[word] = WordScore{
				Word:  vocab[word],
				Score: m.TopicsOverWords.At(topic, word),
			}
		}
		sort.Slice(tss, func(i, j int) bool {
			return tss[i].Score > tss[j].Score
		})
		tops[topic] = tss[0:top]
	}
	return tops
}

// DominantTopic - the topic with the highest probability for one document
func (m *Model) DominantTopic(doc int) int {
	dr, _ := m.DocsOverTopics.Dims()
	max := float64(0)
	winner := 0
	for topic := 0; topic < dr; topic++ {
		if m.DocsOverTopics.At(topic, doc) > max {
			winner = topic
			max = m.DocsOverTopics.At(topic, doc)
		}
	}
	return winner
}

// DominantCounts - N documents have topic X as their dominant topic
func (m *Model) DominantCounts() []int {
	counter := make([]int, m.Topics)
	_, dc := m.DocsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		counter[m.DominantTopic(doc)] += 1
	}
	return counter
}

// ScaledWeights - total accumulated weight of each topic, scaled so the heaviest is 1.0
func (m *Model) ScaledWeights() []float64 {
	counter := make([]float64, m.Topics)
	dr, dc := m.DocsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			counter[topic] += m.DocsOverTopics.At(topic, doc)
		}
	}

	high := float64(0)
	for _, c := range counter {
		if c > high {
			high = c
		}
	}

	scaled := make([]float64, m.Topics)
	if high == 0 {
		return scaled
	}
	for i := 0; i < m.Topics; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// Representative - the document most associated with a topic
type Representative struct {
	Topic int     `json:"topic"`
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Representatives - for each topic, the document that fits it best
func (m *Model) Representatives() []Representative {
	dr, dc := m.DocsOverTopics.Dims()

	reps := make([]Representative, dr)
	for topic := 0; topic < dr; topic++ {
		max := float64(0)
		winner := 0
		for doc := 0; doc < dc; doc++ {
			if m.DocsOverTopics.At(topic, doc) > max {
				winner = doc
				max = m.DocsOverTopics.At(topic, doc)
			}
		}
		reps[topic] = Representative{
			Topic: topic,
			ID:    m.Docs[winner].ID,
			Label: m.Docs[winner].Label,
			Score: max,
		}
	}
	return reps
}

// DocTopicSparse - one document's topic distribution as (topic, probability) pairs
func (m *Model) DocTopicSparse(doc int) bow.SparseVector {
	dr, _ := m.DocsOverTopics.Dims()
	var sv bow.SparseVector
	for topic := 0; topic < dr; topic++ {
		p := m.DocsOverTopics.At(topic, doc)
		if p != 0 {
			sv = append(sv, bow.Entry{ID: topic, Val: p})
		}
	}
	return sv
}

// DocTopicsDense - one document's topic distribution as a dense slice of length dim; topics past dim
// are dropped, which is what a fixed-width plot wants
func (m *Model) DocTopicsDense(doc int, dim int) []float64 {
	return bow.ToDenseTruncated(m.DocTopicSparse(doc), dim)
}

// TopicSummary - the full report card for one topic
type TopicSummary struct {
	Topic         int       `json:"topic"`
	TopWords      []string  `json:"topwords"`
	DominantDocs  int       `json:"dominantdocs"`
	DominantShare float64   `json:"dominantshare"`
	ScaledWeight  float64   `json:"scaledweight"`
	BestDoc       int       `json:"bestdoc"`
	BestDocLabel  string    `json:"bestdoclabel"`
	BestDocScore  float64   `json:"bestdocscore"`
	WordScores    []float64 `json:"wordscores"`
}

// Summarize - report cards for every topic
func (m *Model) Summarize(topn int) []TopicSummary {
	tops := m.SortedTopics(topn)
	counts := m.DominantCounts()
	weights := m.ScaledWeights()
	reps := m.Representatives()
	_, dc := m.DocsOverTopics.Dims()

	out := make([]TopicSummary, m.Topics)
	for topic := 0; topic < m.Topics; topic++ {
		ww := make([]string, len(tops[topic]))
		ss := make([]float64, len(tops[topic]))
		for i, ws := range tops[topic] {
			ww[i] = ws.Word
			ss[i] = ws.Score
		}
		out[topic] = TopicSummary{
			Topic:         topic,
			TopWords:      ww,
			DominantDocs:  counts[topic],
			DominantShare: float64(counts[topic]) / float64(dc) * 100,
			ScaledWeight:  weights[topic],
			BestDoc:       reps[topic].ID,
			BestDocLabel:  reps[topic].Label,
			BestDocScore:  reps[topic].Score,
			WordScores:    ss,
		}
	}
	return out
}
