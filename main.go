//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/vishal5498/CorporaGoServer/internal/corpus"
	"github.com/vishal5498/CorporaGoServer/internal/db"
	"github.com/vishal5498/CorporaGoServer/internal/lnch"
	"github.com/vishal5498/CorporaGoServer/internal/mm"
	"github.com/vishal5498/CorporaGoServer/internal/vec"
	"github.com/vishal5498/CorporaGoServer/internal/vlt"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
	"github.com/vishal5498/CorporaGoServer/web"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

func main() {
	const (
		ESS = "%s (v%s) has loaded %d documents"
	)

	lnch.LookForConfigFile()
	lnch.ConfigAtLaunch()

	if lnch.Config.ProfileCPU {
		defer profile.Start().Stop()
	}

	if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	Msg = lnch.NewMessageMakerConfigured()
	lnch.UpdateMessageMakerWithConfig(Msg)

	if !lnch.Config.QuietStart {
		lnch.PrintVersion(*lnch.Config)
		lnch.PrintBuildInfo(*lnch.Config)
	}

	// the hubs stay up for the life of the program
	go mm.PathInfoHub()
	go vlt.WSJobInfoHub()
	go vlt.WebsocketPool.WSPoolStartListening()

	if lnch.Config.CorpusFormat == vv.CORPUSFORMATPSQL {
		db.SQLPool = db.FillDBConnectionPool(*lnch.Config)
	}

	start := time.Now()
	previous := time.Now()

	dd := corpus.LoadCorpus(*lnch.Config)
	dd = corpus.FilterByLabel(dd, lnch.Config.CorpusLabels)
	Msg.Timer("A1", fmt.Sprintf("%d documents loaded", len(dd)), start, previous)

	previous = time.Now()
	dd = vec.Tokenize(dd, *lnch.Config)
	dd = corpus.DropShortDocuments(dd, lnch.Config.MinDocTokens)
	Msg.Timer("A2", fmt.Sprintf("corpus normalized and tokenized; %d documents survived", len(dd)), start, previous)

	web.SetCorpus(dd)

	Msg.MAND(Msg.Color(fmt.Sprintf(ESS, vv.MYNAME, vv.VERSION, len(dd))))

	if lnch.Config.TickerActive {
		go Msg.Ticker(vv.TICKERDELAY)
	}

	web.StartEchoServer()
}
