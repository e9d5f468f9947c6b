//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "CorporaGoServer"
	SHORTNAME = "CGS"
	VERSION   = "0.3.1"
	PROJURL   = "https://github.com/vishal5498/CorporaGoServer"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "cgs-conf.json"
	CONFIGPROLIX   = "cgs-prolix-conf.json"

	AVGCHARSPERWORD          = 6 // used to preallocate string builders; aim high of the real mean
	CORPUSFORMATDIR          = "dir"
	CORPUSFORMATPSQL         = "pg"
	CORPUSFORMATSQLITE       = "sqlite"
	CORPUSTABLE              = "documents" // fixed (id, label, text) column shape
	DEFAULTCORPUSDIR         = "./corpus"
	DEFAULTCORPUSFORMAT      = CORPUSFORMATDIR
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = 0
	DEFAULTPSQLHOST          = "127.0.0.1"
	DEFAULTPSQLUSER          = "cgs_rd"
	DEFAULTPSQLPORT          = 5432
	DEFAULTPSQLDB            = "corporaDB"
	JSONINDENT               = "  "
	MAXECHOREQPERSECONDPERIP = 60
	MINDOCTOKENS             = 1 // a document that normalizes to nothing poisons the models
	MINTOKENLENGTH           = 2
	POOLEDCONNSPERWORKER     = 3 // cap on db connections at (P * Config.WorkerCount)
	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8000
	TICKERISACTIVE           = false
	TICKERDELAY              = 30 * time.Second
	TIMEOUTRD                = 15 * time.Second
	TIMEOUTWR                = 120 * time.Second // model training on a big corpus is slow; do not strangle it
	TOPTFIDFTERMS            = 8
	TOPVOCABCOUNT            = 25
	UNACCEPTABLEINPUT        = `"'!@:,=_/` // echo+net/url means some characters cannot even reach a handler: #%&;
	USEGZIP                  = false
	WRITEPERMS               = 0644
	WSPOLLINGPAUSE           = 10000000 * 10 // 10000000 * 10 = every .1s
)
