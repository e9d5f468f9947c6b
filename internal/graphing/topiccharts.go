//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package graphing

import (
	"bytes"
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
	"gonum.org/v1/gonum/mat"
)

//
// LDA graphing: t-SNE projection of the document/topic distributions, one series per dominant topic
//

// TopicScatter - embed the docs-over-topics distribution into 2d and chart it
func TopicScatter(ntopics int, docsOverTopics mat.Matrix, dd []str.Document, cfg str.CurrentConfiguration) string {
	const (
		TITLESTR = "t-SNE embedding of %d documents over %d topics"
		SERIES   = "topic %d"
		SYMSZ    = 10
	)

	dr, dc := docsOverTopics.Dims()

	// the dominant topic labels each document's point
	doclabels := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if docsOverTopics.At(topic, doc) > max {
				winner = topic
				max = docsOverTopics.At(topic, doc)
			}
		}
		doclabels[doc] = winner
	}

	var dflat []float64
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			dflat = append(dflat, docsOverTopics.At(topic, doc))
		}
	}

	// note the flipped r & c: t-SNE wants documents as rows; otherwise you get a topics x 2 matrix later
	wv := mat.NewDense(dc, dr, dflat)

	t := tsne.NewTSNE(2, vv.TSNEPERPLEXITY, vv.TSNELEARNINGRATE, vv.TSNEITERATIONS, false)
	t.EmbedData(wv, nil)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: cfg.VectorChtWd, Height: cfg.VectorChtHt}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf(TITLESTR, dc, ntopics)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Show: true, Scale: true}),
		charts.WithYAxisOpts(opts.YAxis{Show: true, Scale: true}),
	)

	// one series per dominant topic so the legend doubles as a topic toggle
	for topic := 0; topic < ntopics; topic++ {
		var pts []opts.ScatterData
		for doc := 0; doc < dc; doc++ {
			if doclabels[doc] != topic {
				continue
			}
			pts = append(pts, opts.ScatterData{
				Name:       dd[doc].Label,
				Value:      []interface{}{t.Y.At(doc, 0), t.Y.At(doc, 1)},
				SymbolSize: SYMSZ,
			})
		}
		scatter.AddSeries(fmt.Sprintf(SERIES, topic+1), pts)
	}

	return renderonechart(scatter)
}

// TopicWeightBar - bar chart of the scaled accumulated weight of each topic
func TopicWeightBar(weights []float64, cfg str.CurrentConfiguration) string {
	const (
		TITLESTR = "Scaled accumulated weight of each topic"
		SERIES   = "weight"
		TOPICFMT = "topic %d"
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: cfg.VectorChtWd, Height: cfg.VectorChtHt}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
	)

	names := make([]string, len(weights))
	data := make([]opts.BarData, len(weights))
	for i, w := range weights {
		names[i] = fmt.Sprintf(TOPICFMT, i+1)
		data[i] = opts.BarData{Value: w}
	}

	bar.SetXAxis(names)
	bar.AddSeries(SERIES, data)

	return renderonechart(bar)
}

// renderonechart - run a single chart through the customized page renderer
func renderonechart(c components.Charter) string {
	p := components.NewPage()
	p.Renderer = NewCustomPageRender(p, p.Validate)
	p.AddCharts(c)
	p.Validate()

	var buf bytes.Buffer
	err := p.Render(&buf)
	Msg.EC(err)

	return buf.String()
}
