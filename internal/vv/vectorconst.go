//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	CONFIGVECTORW2V     = "cgs-vector-conf-w2v.json"
	CONFIGVECTORGLOVE   = "cgs-vector-conf-glove.json"
	CONFIGVECTORLEXVEC  = "cgs-vector-conf-lexvec.json"
	CONFIGVECTORSTOPS   = "cgs-vector-stops-english.json"
	CONFIGLEMMAMAP      = "cgs-lemma-map.json"
	DEFAULTCHRTWIDTH    = "1500px"
	DEFAULTCHRTHEIGHT   = "1200px"
	LDATOPICS           = 8
	LDAMAXTOPICS        = 30
	LDAITER             = 200
	LDAXFORMPASSES      = 100
	LSADIMENSIONS       = 2
	LSAMAXDIMENSIONS    = 50
	TSNEPERPLEXITY      = 150
	TSNELEARNINGRATE    = 100
	TSNEITERATIONS      = 150
	VECTORNEIGHBORS     = 16
	VECTORNEIGHBORSMAX  = 40
	VECTORNEIGHBORSMIN  = 4
	VECTORMAXDOCS       = 1000000
	VECTORMODELDEFAULT  = "w2v"
	VECTORWEBEXTDEFAULT = false
	VECTORUSELEMMATIZER = false
)
