//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package graphing

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vishal5498/CorporaGoServer/internal/gen"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/ynqa/wego/pkg/search"
)

//
// GRAPHING
//

// NeighborGraph - generate the html and js for a nearest neighbors force graph
func NeighborGraph(coreword string, settings string, nn map[string]search.Neighbors, cfg str.CurrentConfiguration) string {
	// go-echarts is "too clever" and opaque about how to not do things its way
	// we override their page.Render() to yield html+js (see the ModX and CustomX code in renderer.go)
	// this gets injected to the "analysisgraphing" div on the front page

	// see also: https://echarts.apache.org/en/option.html#series-graph

	// [a] acquire a charts.Graph
	g := generategraph(coreword, settings, nn, cfg)
	g.Validate()

	// [b] we are building a page with only one chart and doing it by hand
	p := components.NewPage()
	p.Renderer = NewCustomPageRender(p, p.Validate)

	// [c] add assets to the page
	assets := g.GetAssets()
	for _, v := range assets.JSAssets.Values {
		p.JSAssets.Add(v)
	}

	for _, v := range assets.CSSAssets.Values {
		p.CSSAssets.Add(v)
	}

	// [d] add the chart to the page
	p.Charts = append(p.Charts, g)
	p.Validate()

	// [e] render the chart and get the html+js for it
	var buf bytes.Buffer
	err := p.Render(&buf)
	Msg.EC(err)

	return buf.String()
}

func generategraph(coreword string, settings string, nn map[string]search.Neighbors, cfg str.CurrentConfiguration) *charts.Graph {
	const (
		SYMSIZE       = 25
		PERIPHSYMSZ   = 15
		SIZEDISTORT   = 2.25
		PRECISON      = 4
		REPULSION     = 6000
		GRAVITY       = .15
		EDGELEN       = 40
		EDGEFNTSZ     = 8
		SERIESNAME    = ""
		LAYOUTTYPE    = "force"
		LABELPOSITON  = "right"
		DOTHUE        = 236
		DOTSL         = ", 33%, 40%, 1)"
		LINECURVINESS = 0       // from 0 to 1, but non-zero will double-up the lines...
		LINETYPE      = "solid" // "solid", "dashed", "dotted"
	)

	graph := newneighborgraph(settings, coreword, cfg)

	var gnn []opts.GraphNode
	var gll []opts.GraphLink
	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	round := func(val float64) float32 {
		ratio := math.Pow(10, float64(PRECISON))
		return float32(math.Round(val*ratio) / ratio)
	}

	// find the max similarity: this will let you adjust bubble size so that most similar are biggest
	var maxsim float64
	for _, w := range nn[coreword] {
		if w.Similarity > maxsim {
			maxsim = w.Similarity
		}
	}

	vardot := func(i int) *opts.ItemStyle {
		dv := DOTHUE
		vd := "hsla(" + fmt.Sprintf("%d", dv) + DOTSL
		return &opts.ItemStyle{Color: vd}
	}

	used := make(map[string]bool)

	// the center point
	gnn = append(gnn, opts.GraphNode{Name: coreword, Value: 0, SymbolSize: fmt.Sprintf("%.4f", SYMSIZE*SIZEDISTORT), ItemStyle: vardot(-1)})
	used[coreword] = true

	// the words directly related to this word
	for i, w := range nn[coreword] {
		sizemod := fmt.Sprintf("%.4f", ((w.Similarity/maxsim)*SIZEDISTORT)*SYMSIZE)
		gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: sizemod, ItemStyle: vardot(i)})
		gll = append(gll, opts.GraphLink{Source: coreword, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
		used[w.Word] = true
	}

	// the relationships between the other words
	coreterms := gen.ToSet(gen.StringMapKeysIntoSlice(nn))

	// populate the nodes with just the core collection of terms
	simpleweb := func() {
		for t := range coreterms {
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
			}
		}
	}

	// populate the nodes with both the core terms and the neighbors of those terms as well
	expandedweb := func() {
		i := -1
		for t := range coreterms {
			i += 1
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
				if _, ok := used[w.Word]; !ok {
					gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: PERIPHSYMSZ, ItemStyle: vardot(i)})
					used[w.Word] = true
				}
				gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
			}
		}
	}

	if cfg.VectorWebExt {
		expandedweb()
	} else {
		simpleweb()
	}

	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{
				Show:     true,
				Position: LABELPOSITON,
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Curveness: LINECURVINESS,
				Type:      LINETYPE,
			}),
		charts.WithGraphChartOpts(
			// https://github.com/go-echarts/go-echarts/opts/charts.go
			// cf. https://echarts.apache.org/en/option.html#series-graph
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				FocusNodeAdjacency: true,
			},
		),
	)
	return graph
}

// newneighborgraph - return a pre-formatted charts.Graph
func newneighborgraph(settings string, coreword string, cfg str.CurrentConfiguration) *charts.Graph {
	const (
		FONTSTYLE = "normal"
		TITLESTR  = "Nearest neighbors of »%s«"
		LEFTALIGN = "20"
		BOTTALIGN = "3%"
		SAVETYPE  = "svg"
		SAVESTR   = "Save to file..."
		TEXTCOLOR = "" // "black"
	)

	tst := opts.TextStyle{
		Color:     TEXTCOLOR,
		FontStyle: FONTSTYLE,
		FontSize:  16,
		Padding:   "15",
		Normal:    nil,
	}

	sst := opts.TextStyle{
		Color:     TEXTCOLOR,
		FontStyle: FONTSTYLE,
		FontSize:  10,
	}

	tit := opts.Title{
		Title:         fmt.Sprintf(TITLESTR, coreword),
		TitleStyle:    &tst,
		Subtitle:      settings, // can not see this if you put the title on the bottom of the image
		SubtitleStyle: &sst,
		Top:           "",
		Bottom:        BOTTALIGN,
		Left:          LEFTALIGN,
		Right:         "",
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE, // svg, jpeg, png; svg requires specific chart initialization
		Name:  fmt.Sprintf(TITLESTR, coreword),
		Title: SAVESTR, // get chinese if ""
	}

	tbf := opts.ToolBoxFeature{
		SaveAsImage: &tbs,
	}

	tbo := opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Top:     "",
		Right:   "",
		Bottom:  "",
		Feature: &tbf,
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: cfg.VectorChtWd, Height: cfg.VectorChtHt}),
		charts.WithTitleOpts(tit),
		charts.WithToolboxOpts(tbo),
	)

	return graph
}
