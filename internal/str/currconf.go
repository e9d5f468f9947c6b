//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BadChars      string
	BlackAndWhite bool
	CorpusDir     string
	CorpusFormat  string   // "dir", "pg", "sqlite"
	CorpusLabels  []string // when non-empty, load only the documents carrying one of these labels
	CorpusSQLite  string   // path to the sqlite file when CorpusFormat is "sqlite"
	EchoLog       int    // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Gzip          bool
	HostIP        string
	HostPort      int
	LdaGraph      bool
	LdaTopics     int
	Lemmatize     bool
	LogLevel      int
	ManualGC      bool
	MinDocTokens  int // documents with fewer tokens after normalization are discarded
	MinTokenLen   int
	PGLogin       PostgresLogin
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	TickerActive  bool
	VectorChtHt   string
	VectorChtWd   string
	VectorMaxDocs int
	VectorModel   string
	VectorNeighb  int
	VectorWebExt  bool // "simple" when false; "expanded" when true
	WorkerCount   int
}
