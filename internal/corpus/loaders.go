//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/vishal5498/CorporaGoServer/internal/db"
	"github.com/vishal5498/CorporaGoServer/internal/lnch"
	"github.com/vishal5498/CorporaGoServer/internal/str"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// the loaders all return the same thing: a slice of Documents with IDs assigned in load order;
// everything downstream (counts, models, charts) is source-agnostic
//

// LoadCorpus - read the corpus named in the configuration and hand back its documents
func LoadCorpus(cfg str.CurrentConfiguration) []str.Document {
	const (
		FAIL1 = "LoadCorpus() does not know the corpus format '%s'"
		MSG1  = "loaded %d documents via '%s'"
	)

	var dd []str.Document
	switch cfg.CorpusFormat {
	case vv.CORPUSFORMATDIR:
		dd = FromDirectory(cfg.CorpusDir)
	case vv.CORPUSFORMATPSQL:
		dd = FromPostgres()
	case vv.CORPUSFORMATSQLITE:
		dd = FromSQLite(cfg.CorpusSQLite)
	default:
		Msg.MAND(fmt.Sprintf(FAIL1, cfg.CorpusFormat))
		Msg.ExitOrHang(0)
	}

	if len(dd) > cfg.VectorMaxDocs {
		dd = dd[:cfg.VectorMaxDocs]
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(dd), cfg.CorpusFormat))
	return dd
}

// FromDirectory - every '.txt' under the root is a document; a subdirectory name labels its files
func FromDirectory(root string) []str.Document {
	const (
		FAIL1 = "Could not find a corpus directory at '%s'"
		FAIL2 = "Could not read '%s'; skipping it"
	)

	if _, e := os.Stat(root); e != nil {
		Msg.MAND(fmt.Sprintf(FAIL1, root))
		Msg.ExitOrHang(0)
	}

	var found []string
	walk := func(pth string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			found = append(found, pth)
		}
		return nil
	}

	e := filepath.WalkDir(root, walk)
	Msg.EC(e)

	// load order should not depend on the filesystem's mood
	sort.Strings(found)

	var dd []str.Document
	for i, f := range found {
		content, err := os.ReadFile(f)
		if err != nil {
			Msg.WARN(fmt.Sprintf(FAIL2, f))
			continue
		}

		lbl := filepath.Base(filepath.Dir(f))
		if filepath.Dir(f) == filepath.Clean(root) {
			// a file sitting at the top level labels itself
			lbl = strings.TrimSuffix(filepath.Base(f), ".txt")
		}

		dd = append(dd, str.Document{ID: i, Label: lbl, Raw: string(content)})
	}

	return dd
}

// FromPostgres - fetch every row of the corpus table; see the documentation for the expected table shape
func FromPostgres() []str.Document {
	const (
		QTMPL = "SELECT id, label, text FROM %s ORDER BY id"
	)

	type corpusrow struct {
		ID    int
		Label string
		Text  string
	}

	dbconn := db.GetDBConnection()
	defer dbconn.Release()

	foundrows, e := dbconn.Query(context.Background(), fmt.Sprintf(QTMPL, vv.CORPUSTABLE))
	Msg.EC(e)

	rr, e := pgx.CollectRows(foundrows, pgx.RowToStructByPos[corpusrow])
	Msg.EC(e)

	dd := make([]str.Document, len(rr))
	for i, r := range rr {
		dd[i] = str.Document{ID: r.ID, Label: r.Label, Raw: r.Text}
	}

	return dd
}

// FromSQLite - fetch every row of the corpus table inside a sqlite file
func FromSQLite(pth string) []str.Document {
	const (
		QTMPL = "SELECT id, label, text FROM %s ORDER BY id"
	)

	lite := db.OpenSQLiteCorpus(pth)
	defer func() {
		e := lite.Close()
		Msg.EC(e)
	}()

	rows, e := lite.Query(fmt.Sprintf(QTMPL, vv.CORPUSTABLE))
	Msg.EC(e)
	defer rows.Close()

	var dd []str.Document
	for rows.Next() {
		var d str.Document
		e = rows.Scan(&d.ID, &d.Label, &d.Raw)
		Msg.EC(e)
		dd = append(dd, d)
	}
	Msg.EC(rows.Err())

	return dd
}
