//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "strings"

// Document - one member of the loaded collection; ID is positional and assigned by the loader
type Document struct {
	ID     int
	Label  string
	Raw    string
	Tokens []string
}

// Text - the normalized token stream as a single space-joined string
func (d *Document) Text() string {
	return strings.Join(d.Tokens, " ")
}

// AnalysisOutputJSON - the uniform response shape for the analysis routes
type AnalysisOutputJSON struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Found   string `json:"found"`
	Image   string `json:"image"`
	JS      string `json:"js"`
}
