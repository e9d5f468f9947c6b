//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
	"github.com/ynqa/wego/pkg/embedding"
	"github.com/ynqa/wego/pkg/model"
	"github.com/ynqa/wego/pkg/model/glove"
	"github.com/ynqa/wego/pkg/model/lexvec"
	"github.com/ynqa/wego/pkg/model/modelutil/vector"
	"github.com/ynqa/wego/pkg/model/word2vec"
	"github.com/ynqa/wego/pkg/search"
)

//
// WEGO NOTES AND DEFAULTS
//

var (
	DefaultW2VVectors = word2vec.Options{
		BatchSize:          1024,
		Dim:                125,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               15,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           10,
		MinLR:              0.0000025,
		ModelType:          "skipgram",
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             8,
	}
	// DefaultGloveVectors - wego's default: {0.75 10000 inc 10 false 20 0.025 15 100000 -1 5 sgd 0.001 false false 5 100}
	DefaultGloveVectors = glove.Options{
		// see also: https://nlp.stanford.edu/projects/glove/
		Alpha:              0.55,
		BatchSize:          1024,
		CountType:          "inc", // "inc", "prox" available; but we panic on "prox"
		Dim:                75,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               25,
		LogBatch:           100000,
		MaxCount:           -1,
		MinCount:           10,
		SolverType:         "adagrad", // "sdg", "adagrad" available
		SubsampleThreshold: 0.001,
		ToLower:            false,
		Verbose:            false,
		Window:             8,
		Xmax:               90,
	}
	DefaultLexVecVectors = lexvec.Options{
		BatchSize:          1024,
		Dim:                125,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               15,
		LogBatch:           100000,
		MaxCount:           -1,
		MinCount:           10,
		MinLR:              0.025 * 1.0e-4,
		NegativeSampleSize: 5,
		RelationType:       "ppmi", // "ppmi", "pmi", "co", "logco" are available
		Smooth:             0.75,
		SubsampleThreshold: 1.0e-3,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             8,
	}
)

// GenerateEmbeddings - train a semantic vector model over the corpus and hand back its embeddings
func GenerateEmbeddings(modeltype string, dd []str.Document) (embedding.Embeddings, error) {
	const (
		FAIL1 = "model initialization failed"
		FAIL2 = "GenerateEmbeddings() failed to train vector embeddings"
		FAIL3 = "GenerateEmbeddings() failed to save and reload the trained model"
		MSG1  = "GenerateEmbeddings() building a text block from %d documents"
		MSG2  = "GenerateEmbeddings() successfully trained a %s model"
	)

	Msg.PEEK(fmt.Sprintf(MSG1, len(dd)))

	// training input is one long whitespace-separated block; string addition would be unusably slow on
	// a big corpus, so build it
	var sb strings.Builder
	chars := 0
	for _, d := range dd {
		chars += len(d.Raw)
	}
	sb.Grow(chars)
	for _, d := range dd {
		for _, t := range d.Tokens {
			sb.WriteString(t)
			sb.WriteString(" ")
		}
	}
	thetext := strings.TrimSpace(sb.String())

	var vmodel model.Model

	switch modeltype {
	case "glove":
		cfg := glovevectorconfig()
		m, err := glove.NewForOptions(cfg)
		if err != nil {
			return nil, fmt.Errorf(FAIL1+": %w", err)
		}
		vmodel = m
	case "lexvec":
		cfg := lexvecvectorconfig()
		m, err := lexvec.NewForOptions(cfg)
		if err != nil {
			return nil, fmt.Errorf(FAIL1+": %w", err)
		}
		vmodel = m
	default:
		cfg := w2vvectorconfig()
		m, err := word2vec.NewForOptions(cfg)
		if err != nil {
			return nil, fmt.Errorf(FAIL1+": %w", err)
		}
		vmodel = m
	}

	// input for Train() is an io.ReadSeeker
	b := bytes.NewReader([]byte(thetext))

	if err := vmodel.Train(b); err != nil {
		return nil, fmt.Errorf(FAIL2+": %w", err)
	}
	Msg.TMI(fmt.Sprintf(MSG2, modeltype))

	// use buffers; skip the disk
	var buf bytes.Buffer
	w := io.Writer(&buf)
	if err := vmodel.Save(w, vector.Agg); err != nil {
		return nil, fmt.Errorf(FAIL3+": %w", err)
	}

	r := io.Reader(&buf)
	embs, err := embedding.Load(r)
	if err != nil {
		return nil, fmt.Errorf(FAIL3+": %w", err)
	}

	return embs, nil
}

// WordVector - the trained vector for one word
func WordVector(embs embedding.Embeddings, word string) ([]float64, error) {
	const (
		FAIL1 = "WordVector(): '%s' is not in the model's vocabulary"
	)

	for _, e := range embs {
		if e.Word == word {
			return e.Vector, nil
		}
	}
	return nil, fmt.Errorf(FAIL1, word)
}

// NearestNeighbors - the nearest neighbors of a word in a trained model; optionally one further hop outward
func NearestNeighbors(word string, embs embedding.Embeddings, ncount int, expand bool) (map[string]search.Neighbors, error) {
	const (
		FAIL1 = "NearestNeighbors() could not find neighbors of a neighbor: '%s' neighbors (via '%s')"
		FAIL2 = "NearestNeighbors() failed to produce a Searcher"
		FAIL3 = "NearestNeighbors() failed to yield Neighbors for '%s'"
	)

	searcher, err := search.New(embs...)
	if err != nil {
		return nil, fmt.Errorf(FAIL2+": %w", err)
	}

	if ncount < vv.VECTORNEIGHBORSMIN || ncount > vv.VECTORNEIGHBORSMAX {
		ncount = vv.VECTORNEIGHBORS
	}

	nn := make(map[string]search.Neighbors)
	neighbors, err := searcher.SearchInternal(word, ncount)
	if err != nil {
		return nil, fmt.Errorf(FAIL3, word)
	}

	nn[word] = neighbors
	if expand {
		for _, n := range neighbors {
			meta, e := searcher.SearchInternal(n.Word, ncount)
			if e != nil {
				Msg.FYI(fmt.Sprintf(FAIL1, n.Word, word))
			} else {
				nn[n.Word] = meta
			}
		}
	}

	return nn, nil
}

// w2vvectorconfig - read the CONFIGVECTORW2V file and return word2vec.Options
func w2vvectorconfig() word2vec.Options {
	const (
		ERR1 = "w2vvectorconfig() cannot find UserHomeDir"
		ERR2 = "w2vvectorconfig() failed to parse "
		MSG1 = "wrote default vector configuration file "
		MSG2 = "read vector configuration from "
	)

	cfg := DefaultW2VVectors
	cfg.Goroutines = runtime.NumCPU()

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return cfg
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORW2V)

	if yes != nil {
		content, err := json.MarshalIndent(cfg, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGVECTORW2V, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vv.CONFIGVECTORW2V)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORW2V)
		decoderc := json.NewDecoder(loadedcfg)
		vc := word2vec.Options{}
		errc := decoderc.Decode(&vc)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vv.CONFIGVECTORW2V)
			cfg = DefaultW2VVectors
		} else {
			cfg = vc
		}
		Msg.TMI(MSG2 + vv.CONFIGVECTORW2V)
	}

	return cfg
}

// glovevectorconfig - read the CONFIGVECTORGLOVE file and return glove.Options
func glovevectorconfig() glove.Options {
	const (
		ERR1 = "glovevectorconfig() cannot find UserHomeDir"
		ERR2 = "glovevectorconfig() failed to parse "
		MSG1 = "wrote default vector configuration file "
		MSG2 = "read vector configuration from "
	)

	cfg := DefaultGloveVectors
	cfg.Goroutines = runtime.NumCPU()

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return cfg
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORGLOVE)

	if yes != nil {
		content, err := json.MarshalIndent(cfg, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGVECTORGLOVE, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vv.CONFIGVECTORGLOVE)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORGLOVE)
		decoderc := json.NewDecoder(loadedcfg)
		vc := glove.Options{}
		errc := decoderc.Decode(&vc)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vv.CONFIGVECTORGLOVE)
			cfg = DefaultGloveVectors
		} else {
			cfg = vc
		}
		Msg.TMI(MSG2 + vv.CONFIGVECTORGLOVE)
	}

	return cfg
}

// lexvecvectorconfig - read the CONFIGVECTORLEXVEC file and return lexvec.Options
func lexvecvectorconfig() lexvec.Options {
	const (
		ERR1 = "lexvecvectorconfig() cannot find UserHomeDir"
		ERR2 = "lexvecvectorconfig() failed to parse "
		MSG1 = "wrote default vector configuration file "
		MSG2 = "read vector configuration from "
	)

	cfg := DefaultLexVecVectors
	cfg.Goroutines = runtime.NumCPU()

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return cfg
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORLEXVEC)

	if yes != nil {
		content, err := json.MarshalIndent(cfg, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGVECTORLEXVEC, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vv.CONFIGVECTORLEXVEC)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORLEXVEC)
		decoderc := json.NewDecoder(loadedcfg)
		vc := lexvec.Options{}
		errc := decoderc.Decode(&vc)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vv.CONFIGVECTORLEXVEC)
			cfg = DefaultLexVecVectors
		} else {
			cfg = vc
		}
		Msg.TMI(MSG2 + vv.CONFIGVECTORLEXVEC)
	}

	return cfg
}
