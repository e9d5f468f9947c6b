//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

// Summary - the headline numbers for a loaded corpus
type Summary struct {
	Documents int            `json:"documents"`
	Labels    map[string]int `json:"labels"`
	Tokens    int            `json:"tokens"`
	Chars     int            `json:"chars"`
}

// Summarize - count documents, labels, and (estimated or real) tokens
func Summarize(dd []str.Document) Summary {
	s := Summary{Labels: make(map[string]int)}
	s.Documents = len(dd)
	for _, d := range dd {
		s.Labels[d.Label] += 1
		s.Chars += len(d.Raw)
		if len(d.Tokens) != 0 {
			s.Tokens += len(d.Tokens)
		} else {
			// not yet tokenized; guess from the character count
			s.Tokens += len(d.Raw) / vv.AVGCHARSPERWORD
		}
	}
	return s
}

// String - a one-line report suitable for the console
func (s Summary) String() string {
	const (
		TMPL = "%d documents; %d labels; %d tokens"
	)
	return fmt.Sprintf(TMPL, s.Documents, len(s.Labels), s.Tokens)
}

// SortedLabels - label names in descending order of document count
func (s Summary) SortedLabels() []string {
	ll := make([]string, 0, len(s.Labels))
	for l := range s.Labels {
		ll = append(ll, l)
	}
	sort.Slice(ll, func(i, j int) bool {
		if s.Labels[ll[i]] == s.Labels[ll[j]] {
			return ll[i] < ll[j]
		}
		return s.Labels[ll[i]] > s.Labels[ll[j]]
	})
	return ll
}

// FilterByLabel - keep only the documents whose label matches one of the requested labels
func FilterByLabel(dd []str.Document, keep []string) []str.Document {
	if len(keep) == 0 {
		return dd
	}

	want := make(map[string]bool, len(keep))
	for _, k := range keep {
		want[strings.TrimSpace(k)] = true
	}

	var out []str.Document
	for _, d := range dd {
		if want[d.Label] {
			out = append(out, d)
		}
	}
	return out
}

// DropShortDocuments - discard any document with fewer than min tokens; they poison the models
func DropShortDocuments(dd []str.Document, min int) []str.Document {
	var out []str.Document
	for _, d := range dd {
		if len(d.Tokens) >= min {
			out = append(out, d)
		}
	}
	return out
}
