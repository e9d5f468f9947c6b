//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"runtime"

	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

// the next variables can be set at build time via ldflags; see the Makefile
var (
	GitCommit string
	VersSuppl string
	BuildDate string
	PGOInfo   string
)

// PrintVersion - print version information; the verbosity will depend on your config settings
func PrintVersion(c str.CurrentConfiguration) {
	// example:
	// CorporaGoServer (CGS) [v0.3.1] [git: 8f3d1c0a] [default.pgo] [gl=0; el=0]

	const (
		SN = " (C1%sC0)"
		GC = " [C4git: C0C2%sC0]"
		LL = " [C6gl=%d; el=%dC0]"
		PG = " [C3%sC0]"
		VR = "C5%sC0 [C2v%sC0]"
	)

	sn := fmt.Sprintf(SN, vv.SHORTNAME)
	gc := ""
	if GitCommit != "" {
		gc = fmt.Sprintf(GC, GitCommit)
	}

	pg := ""
	if PGOInfo != "" {
		pg = fmt.Sprintf(PG, PGOInfo)
	}

	ll := fmt.Sprintf(LL, c.LogLevel, c.EchoLog)
	versioninfo := fmt.Sprintf(VR, vv.MYNAME, vv.VERSION+VersSuppl)
	versioninfo = versioninfo + sn + gc + pg + ll
	versioninfo = Msg.Color(versioninfo)
	fmt.Println(versioninfo)
}

// PrintBuildInfo - print build date, go version, and architecture
func PrintBuildInfo(c str.CurrentConfiguration) {
	// example:
	// 	Built:	2025-12-05@20:21:21		Golang:	go1.21.5
	//	System:	darwin-arm64			WKvCPU:	8/8

	const (
		BD = "\tS1Built:S0\tC3%sC0\t"
		GV = "\tS1Golang:S0\tC3%sC0\n"
		SY = "\tS1System:S0\tC3%s-%sC0\t"
		WC = "\tS1WKvCPU:S0\tC3%d/%dC0\n"
	)

	bi := ""
	if BuildDate != "" {
		bi = fmt.Sprintf(BD, BuildDate)
	}

	bi += fmt.Sprintf(GV, runtime.Version())
	bi += fmt.Sprintf(SY, runtime.GOOS, runtime.GOARCH)
	bi += fmt.Sprintf(WC, c.WorkerCount, runtime.NumCPU())
	bi = Msg.Styled(Msg.Color(bi))
	fmt.Print(bi)
}
