//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vishal5498/CorporaGoServer/internal/gen"
	"github.com/vishal5498/CorporaGoServer/internal/lnch"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/topics"
	"github.com/vishal5498/CorporaGoServer/internal/vec"
	"github.com/vishal5498/CorporaGoServer/internal/vlt"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
	"github.com/ynqa/wego/pkg/embedding"
)

//
// THE WORKBENCH: the loaded corpus plus the models already fitted against it
//
// fitting is expensive; every model is cached on first use and reused until the program exits
//

var (
	// AllDocuments - the normalized corpus; filled at launch and read-only thereafter
	AllDocuments []str.Document

	tfmodellock sync.Mutex
	tfmodel     *vec.TfidfModel

	ldamodellock sync.Mutex
	ldamodels    = make(map[int]*topics.Model)

	lsamodellock sync.Mutex
	lsamodels    = make(map[int]*topics.LSAModel)

	embslock sync.Mutex
	embscache = make(map[string]embedding.Embeddings)
)

// SetCorpus - hand the loaded and tokenized collection to the server routes
func SetCorpus(dd []str.Document) {
	AllDocuments = dd
}

// gettfidfmodel - fetch the cached tf-idf model; fit one if this is the first request
func gettfidfmodel() (*vec.TfidfModel, error) {
	tfmodellock.Lock()
	defer tfmodellock.Unlock()
	if tfmodel != nil {
		return tfmodel, nil
	}
	m, err := vec.FitTfidf(AllDocuments)
	if err != nil {
		return nil, err
	}
	tfmodel = m
	return tfmodel, nil
}

// getldamodel - fetch the cached topic model for k topics; fit one if this is the first request
func getldamodel(k int, workers int) (*topics.Model, error) {
	ldamodellock.Lock()
	defer ldamodellock.Unlock()
	if m, ok := ldamodels[k]; ok {
		return m, nil
	}
	m, err := topics.FitLDA(k, AllDocuments, workers)
	if err != nil {
		return nil, err
	}
	ldamodels[k] = m
	return m, nil
}

// getlsamodel - fetch the cached semantic index with k dimensions; fit one if this is the first request
func getlsamodel(k int) (*topics.LSAModel, error) {
	lsamodellock.Lock()
	defer lsamodellock.Unlock()
	if m, ok := lsamodels[k]; ok {
		return m, nil
	}
	m, err := topics.FitLSA(k, AllDocuments)
	if err != nil {
		return nil, err
	}
	lsamodels[k] = m
	return m, nil
}

// getembeddings - fetch the cached embeddings for this model type; train a model if this is the first request
func getembeddings(modeltype string) (embedding.Embeddings, error) {
	embslock.Lock()
	defer embslock.Unlock()
	if e, ok := embscache[modeltype]; ok {
		return e, nil
	}
	e, err := vec.GenerateEmbeddings(modeltype, AllDocuments)
	if err != nil {
		return nil, err
	}
	embscache[modeltype] = e
	return e, nil
}

//
// JOB REGISTRATION: the analysis routes report their progress through the WSJobInfoHub; the websocket reads it
//

// registerjob - store a new WSJobInfo and return its id; the caller must deletejob() when done
// a client that wants progress over the websocket sends its own "?id=..." and polls for that id
func registerjob(c echo.Context, jt string) string {
	id := gen.Purgechars(lnch.Config.BadChars, c.QueryParam("id"))
	if id == "" {
		id = strings.Replace(uuid.New().String(), "-", "", -1)
	}
	ji := vlt.WSJobInfo{
		ID:       id,
		Exists:   true,
		JobCount: 1,
		JType:    jt,
		Launched: time.Now(),
		RealIP:   c.RealIP(),
	}
	vlt.WSInfo.InsertInfo <- ji
	return id
}

func setjobstage(id string, stage string) {
	vlt.WSInfo.UpdateStage <- vlt.WSJIKVs{Key: id, Val: stage}
}

func setjobsummary(id string, summ string) {
	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: id, Val: summ}
}

func deletejob(id string) {
	vlt.WSInfo.Del <- id
}

// emptyanalysisreturn - the JSON to ship when a route cannot produce results
func emptyanalysisreturn(c echo.Context, reason string) error {
	soj := str.AnalysisOutputJSON{
		Title:   vv.MYNAME,
		Summary: reason,
	}
	return c.JSONPretty(http.StatusOK, soj, vv.JSONINDENT)
}

// parsedocid - turn a :id route parameter into a valid document index
func parsedocid(raw string) (int, error) {
	id := 0
	_, err := fmt.Sscanf(raw, "%d", &id)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a document id", raw)
	}
	if id < 0 || id >= len(AllDocuments) {
		return 0, fmt.Errorf("document id %d is out of range; the collection holds %d documents", id, len(AllDocuments))
	}
	return id, nil
}
