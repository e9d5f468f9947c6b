//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vishal5498/CorporaGoServer/internal/gen"
	"github.com/vishal5498/CorporaGoServer/internal/lnch"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// CLEANING
//

var (
	// English100 - the 100 most common english words
	English100 = []string{"the", "be", "to", "of", "and", "a", "in", "that", "have", "i", "it", "for", "not", "on",
		"with", "he", "as", "you", "do", "at", "this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
		"or", "an", "will", "my", "one", "all", "would", "there", "their", "what", "so", "up", "out", "if", "about",
		"who", "get", "which", "go", "me", "when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
		"people", "into", "year", "your", "good", "some", "could", "them", "see", "other", "than", "then", "now",
		"look", "only", "come", "its", "over", "think", "also", "back", "after", "use", "two", "how", "our", "work",
		"first", "well", "way", "even", "new", "want", "because", "any", "these", "give", "day", "most", "us"}
	EnglishExtra = []string{"is", "was", "are", "were", "been", "being", "am", "has", "had", "did", "does", "said",
		"went", "got", "much", "many", "more", "very", "such", "own", "same", "too", "here", "where", "why", "while",
		"shall", "should", "may", "might", "must", "let", "yet", "nor", "upon", "off", "again", "once", "each",
		"both", "few", "between", "under", "through", "during", "before", "against", "without", "within"}
	EnglishStop = append(English100, EnglishExtra...)
	// EnglishKeep - members of EnglishStop we will not toss
	EnglishKeep = []string{"time", "people", "year", "work", "day", "way", "good", "new"}
)

func getenglishstops() map[string]struct{} {
	es := gen.SetSubtraction(EnglishStop, EnglishKeep)
	return gen.ToSet(es)
}

const (
	// PUNCT - characters to purge before a text is tokenized
	PUNCT = `.,;:!?()[]{}<>"'` + "`" + `~@#$%^&*_+=|\/-0123456789`
)

// Tokenize - normalize every document's raw text into a token sequence
func Tokenize(dd []str.Document, cfg str.CurrentConfiguration) []str.Document {
	const (
		MSG1 = "Tokenize() yielded %d tokens across %d documents"
	)

	stops := readstopconfig()
	sm := gen.ToSet(stops)

	lemma := make(map[string]string)
	if cfg.Lemmatize {
		lemma = readlemmamap()
	}

	tot := 0
	for i := range dd {
		dd[i].Tokens = tokenizeone(dd[i].Raw, cfg.MinTokenLen, sm, lemma)
		tot += len(dd[i].Tokens)
	}

	Msg.PEEK(fmt.Sprintf(MSG1, tot, len(dd)))
	return dd
}

// tokenizeone - lowercase, purge punctuation, split on whitespace, drop shorts and stops, substitute headwords
func tokenizeone(raw string, min int, stops map[string]struct{}, lemma map[string]string) []string {
	clean := gen.Purgechars(PUNCT, strings.ToLower(raw))
	words := strings.Fields(clean)

	var out []string
	for _, w := range words {
		if len([]rune(w)) < min {
			continue
		}
		if h, ok := lemma[w]; ok {
			w = h
		}
		if _, s := stops[w]; s {
			continue
		}
		out = append(out, w)
	}
	return out
}

// readstopconfig - read the CONFIGVECTORSTOPS file and return []stopwords; if it does not exist, generate it
func readstopconfig() []string {
	const (
		ERR1 = "readstopconfig() cannot find UserHomeDir"
		ERR2 = "readstopconfig() failed to parse "
		MSG1 = "readstopconfig() wrote vector stop configuration file: "
		MSG2 = "readstopconfig() read vector stop configuration from: "
	)

	stops := gen.StringMapKeysIntoSlice(getenglishstops())

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return stops
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORSTOPS)

	if yes != nil {
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGVECTORSTOPS, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vv.CONFIGVECTORSTOPS)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORSTOPS)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vv.CONFIGVECTORSTOPS)
		} else {
			stops = stp
		}
		Msg.TMI(MSG2 + vv.CONFIGVECTORSTOPS)
	}
	return stops
}

// readlemmamap - read the CONFIGLEMMAMAP file: an observed-form to headword mapping; absent file means no mapping
func readlemmamap() map[string]string {
	const (
		ERR1 = "readlemmamap() cannot find UserHomeDir"
		ERR2 = "readlemmamap() failed to parse "
		MSG1 = "readlemmamap() wrote an empty lemma map template: "
		MSG2 = "readlemmamap() read %d substitutions from: "
	)

	lemma := make(map[string]string)

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return lemma
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGLEMMAMAP)

	if yes != nil {
		// a template to fill in: {"running": "run", "ran": "run"}
		example := map[string]string{"running": "run", "ran": "run"}
		content, err := json.MarshalIndent(example, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGLEMMAMAP, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vv.CONFIGLEMMAMAP)
		return lemma
	}

	loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGLEMMAMAP)
	decoderc := json.NewDecoder(loadedcfg)
	errc := decoderc.Decode(&lemma)
	_ = loadedcfg.Close()
	if errc != nil {
		Msg.CRIT(ERR2 + vv.CONFIGLEMMAMAP)
		return make(map[string]string)
	}

	Msg.TMI(fmt.Sprintf(MSG2, len(lemma)) + vv.CONFIGLEMMAMAP)
	return lemma
}
