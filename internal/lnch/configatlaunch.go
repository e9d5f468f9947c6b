//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

var (
	Config = BuildDefaultConfig()
)

// LookForConfigFile - test to see if we can find a config file; if not build one with the default values
func LookForConfigFile() {
	_, a := os.Stat(vv.CONFIGBASIC)

	var b error
	var c error

	h, e := os.UserHomeDir()
	if e != nil {
		// how likely is this...?
		b = errors.New("cannot find UserHomeDir")
		c = errors.New("cannot find UserHomeDir")
	} else {
		_, b = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC)
		_, c = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGPROLIX)
	}

	notfound := (a != nil) && (b != nil) && (c != nil)

	if notfound {
		WriteDefaultConfig(h)
	}
}

// WriteDefaultConfig - dump BuildDefaultConfig() to the config directory as JSON
func WriteDefaultConfig(h string) {
	const (
		MSG1  = "wrote default configuration file: "
		FAIL1 = "could not write default configuration file: "
	)

	cdir := fmt.Sprintf(vv.CONFIGALTAPTH, h)
	_ = os.MkdirAll(cdir, os.FileMode(0700))

	content, err := json.MarshalIndent(BuildDefaultConfig(), vv.JSONINDENT, vv.JSONINDENT)
	Msg.EC(err)

	err = os.WriteFile(cdir+vv.CONFIGPROLIX, content, vv.WRITEPERMS)
	if err != nil {
		Msg.CRIT(FAIL1 + cdir + vv.CONFIGPROLIX)
		return
	}
	Msg.CRIT(MSG1 + cdir + vv.CONFIGPROLIX)
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"corporaDB\" ,\"User\": \"cgs_rd\"}"`
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL6 = "Could not open '%s'"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s%s", h, vv.CONFIGPROLIX)

	loadedcfg, e := os.Open(prolixcfg)
	if e != nil {
		Msg.CRIT(fmt.Sprintf(FAIL6, prolixcfg))
	}

	decoderc := json.NewDecoder(loadedcfg)
	confc := str.CurrentConfiguration{}
	errc := decoderc.Decode(&confc)
	_ = loadedcfg.Close()

	if errc == nil {
		Config = &confc
	} else {
		Msg.CRIT(fmt.Sprintf(FAIL3, prolixcfg))
	}

	args := os.Args[1:len(os.Args)]

	for i, a := range args {
		switch a {
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-bw":
			Config.BlackAndWhite = true
		case "-cd":
			Config.CorpusDir = args[i+1]
		case "-cf":
			Config.CorpusFormat = args[i+1]
		case "-cl":
			Config.CorpusLabels = strings.Split(args[i+1], ",")
		case "-cq":
			Config.CorpusSQLite = args[i+1]
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.EchoLog = ll
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			printhelp()
		case "-lg":
			Config.LdaGraph = true
		case "-lm":
			Config.Lemmatize = true
		case "-lt":
			lt, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LdaTopics = lt
		case "-md":
			Config.VectorModel = args[i+1]
		case "-mt":
			mt, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MinDocTokens = mt
		case "-nb":
			nb, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.VectorNeighb = nb
		case "-pc":
			Config.ProfileCPU = true
		case "-pg":
			js := args[i+1]
			var pl str.PostgresLogin
			err := json.Unmarshal([]byte(js), &pl)
			if err != nil {
				Msg.MAND(FAIL1)
				Msg.CRIT(FAIL2)
			}
			Config.PGLogin = pl
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.HostPort = p
		case "-tk":
			Config.TickerActive = true
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		case "-wx":
			Config.VectorWebExt = true
		default:
			// do nothing
		}
	}

	y := ""
	if errc != nil {
		y = " *not*"
	}
	Msg.TMI(fmt.Sprintf("'%s%s'%s loaded", h, vv.CONFIGPROLIX, y))

	SetConfigPass(&confc)

	if Config.VectorMaxDocs == 0 {
		Config.VectorMaxDocs = vv.VECTORMAXDOCS
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BadChars = vv.UNACCEPTABLEINPUT
	c.BlackAndWhite = false
	c.CorpusDir = vv.DEFAULTCORPUSDIR
	c.CorpusFormat = vv.DEFAULTCORPUSFORMAT
	c.CorpusSQLite = ""
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.Gzip = vv.USEGZIP
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.LdaGraph = false
	c.LdaTopics = vv.LDATOPICS
	c.Lemmatize = vv.VECTORUSELEMMATIZER
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.ManualGC = false
	c.MinDocTokens = vv.MINDOCTOKENS
	c.MinTokenLen = vv.MINTOKENLENGTH
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.TickerActive = vv.TICKERISACTIVE
	c.VectorChtHt = vv.DEFAULTCHRTHEIGHT
	c.VectorChtWd = vv.DEFAULTCHRTWIDTH
	c.VectorMaxDocs = vv.VECTORMAXDOCS
	c.VectorModel = vv.VECTORMODELDEFAULT
	c.VectorNeighb = vv.VECTORNEIGHBORS
	c.VectorWebExt = vv.VECTORWEBEXTDEFAULT
	c.WorkerCount = runtime.NumCPU()

	pl := str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	c.PGLogin = pl

	return &c
}

// SetConfigPass - make sure that Config.PGLogin.Pass != "" when postgres is the corpus source
func SetConfigPass(cfg *str.CurrentConfiguration) {
	const (
		FAIL3     = "FAILED to load database credentials from either of '%s' or '%s'"
		FAIL4     = "A 'cgs-conf.json' file should exist and should have the following format:"
		FAIL6     = "Could not open '%s'"
		MINCONFIG = `{"PostgreSQLPassword": "YOURPASSWORDHERE"}` + "\n"
		BLANKPASS = "PostgreSQLPassword is blank. Check your 'cgs-conf.json' file.\n"
	)
	type ConfigFile struct {
		PostgreSQLPassword string
	}

	if Config.CorpusFormat != vv.CORPUSFORMATPSQL {
		// no credentials needed to read a directory or a sqlite file
		return
	}

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	cf := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	acf := fmt.Sprintf("%s%s", h, vv.CONFIGBASIC)

	if Config.PGLogin.Pass == "" {
		Config.PGLogin = str.PostgresLogin{}
		cfa, ee := os.Open(cf)
		if ee != nil {
			Msg.TMI(fmt.Sprintf(FAIL6, cf))
		}
		cfb, ee := os.Open(acf)
		if ee != nil {
			Msg.TMI(fmt.Sprintf(FAIL6, acf))
		}

		defer func(cfa *os.File) {
			err := cfa.Close()
			if err != nil {
			} // the file was almost certainly not found in the first place...
		}(cfa)
		defer func(cfb *os.File) {
			err := cfb.Close()
			if err != nil {
			} // the file was almost certainly not found in the first place...
		}(cfb)

		decodera := json.NewDecoder(cfa)
		confa := ConfigFile{}
		erra := decodera.Decode(&confa)

		decoderb := json.NewDecoder(cfb)
		confb := ConfigFile{}
		errb := decoderb.Decode(&confb)

		if erra != nil && errb != nil && cfg.PGLogin.DBName == "" {
			Msg.CRIT(fmt.Sprintf(FAIL3, cf, acf))
			Msg.CRIT(FAIL4)
			fmt.Printf(MINCONFIG)
			Msg.ExitOrHang(0)
		}

		thecfg := ConfigFile{}
		if erra == nil {
			thecfg = confa
		} else {
			thecfg = confb
		}

		if thecfg.PostgreSQLPassword == "" {
			Msg.MAND(BLANKPASS)
		}

		Config.PGLogin = str.PostgresLogin{
			Host:   vv.DEFAULTPSQLHOST,
			Port:   vv.DEFAULTPSQLPORT,
			User:   vv.DEFAULTPSQLUSER,
			DBName: vv.DEFAULTPSQLDB,
			Pass:   thecfg.PostgreSQLPassword,
		}
	}
}

// printhelp - dump the flag list to the terminal and exit
func printhelp() {
	const (
		HELP = `S1command line optionsS0:
   C1-bwC0     disable color output in the console
   C1-cdC0 C2<dir>C0      path to a directory of .txt files [default: "%s"]
   C1-cfC0 C2<format>C0   corpus source format: "dir", "pg" or "sqlite" [default: "%s"]
   C1-clC0 C2<labels>C0   comma-separated list of labels; only matching documents are loaded
   C1-cqC0 C2<file>C0     path to a sqlite corpus file
   C1-elC0 C2<num>C0      set echo server log level [0-3; default: %d]
   C1-glC0 C2<num>C0      set golang log level [0-5; default: %d]
   C1-gzC0     enable gzip compression of the server's output
   C1-hC0      print this help information
   C1-lgC0     render a t-SNE scatter plot with topic model output
   C1-lmC0     substitute headwords for observed forms before modeling
   C1-ltC0 C2<num>C0      number of topics to model [default: %d]
   C1-mdC0 C2<model>C0    vector model type: "w2v", "glove" or "lexvec" [default: "%s"]
   C1-mtC0 C2<num>C0      discard documents that normalize to fewer than this many tokens [default: %d]
   C1-nbC0 C2<num>C0      number of nearest neighbors to report [%d-%d; default: %d]
   C1-pcC0     write a cpu profile on exit
   C1-pgC0 C2<json>C0     supply postgres credentials as a json string
   C1-pmC0     write a memory profile on exit
   C1-qC0      quiet launch
   C1-saC0 C2<addr>C0     server IP address [default: "%s"]
   C1-spC0 C2<num>C0      server port [default: %d]
   C1-tkC0     enable the uptime ticker
   C1-vC0      print version and exit
   C1-vvC0     print full version and build info and exit
   C1-wcC0 C2<num>C0      worker count [default: NumCPU: %d]
   C1-wxC0     expanded neighbor graphs: plot the neighbors of the neighbors`
	)

	PrintVersion(*Config)
	m := fmt.Sprintf(HELP, vv.DEFAULTCORPUSDIR, vv.DEFAULTCORPUSFORMAT, vv.DEFAULTECHOLOGLEVEL,
		vv.DEFAULTGOLOGLEVEL, vv.LDATOPICS, vv.VECTORMODELDEFAULT, vv.MINDOCTOKENS, vv.VECTORNEIGHBORSMIN,
		vv.VECTORNEIGHBORSMAX, vv.VECTORNEIGHBORS, vv.SERVEDFROMHOST, vv.SERVEDFROMPORT, runtime.NumCPU())
	fmt.Println(Msg.Styled(Msg.Color(m)))
	os.Exit(0)
}
