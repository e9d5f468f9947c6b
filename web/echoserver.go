//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/vishal5498/CorporaGoServer/internal/lnch"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc to return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		} else {
			last := ua[len(ua)-1]
			buf.Write([]byte(last))
			return 1, nil
		}
	}

	//
	// SETUP
	//

	e := echo.New()

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	switch lnch.Config.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// CORPORA ROUTES
	//

	//
	// [a] frontpage and css ("rt-frontpage.go")
	//

	e.GET("/", RtFrontpage)
	e.GET("/emb/css/cgs.css", RtEmbCSS)

	//
	// [b] the collection ("rt-corpus.go")
	//

	e.GET("/corpus/summary", RtCorpusSummary)    // "u: /corpus/summary"
	e.GET("/corpus/vocab/:n", RtCorpusVocab)     // "u: /corpus/vocab/25"
	e.GET("/corpus/document/:id", RtCorpusDoc)   // "u: /corpus/document/3"

	//
	// [c] analyses ("rt-analysis.go")
	//

	e.GET("/analysis/topics/:k", RtLdaTopics)          // "u: /analysis/topics/8"
	e.GET("/analysis/lsa/:k", RtLsaQuery)              // "u: /analysis/lsa/20?query=wine+dark+sea"
	e.GET("/analysis/neighbors/:word", RtNeighbors)    // "u: /analysis/neighbors/sea"
	e.GET("/analysis/tfidf/:id", RtTfidfTerms)         // "u: /analysis/tfidf/3"
	e.GET("/analysis/similarity/:a/:b", RtSimilarity)  // "u: /analysis/similarity/3/7"

	//
	// [d] websocket ("rt-websocket.go")
	//

	e.GET("/ws", RtWebsocket)

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}
