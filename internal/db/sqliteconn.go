//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// OpenSQLiteCorpus - open a read-only handle onto a sqlite corpus file
func OpenSQLiteCorpus(pth string) *sql.DB {
	const (
		FAIL1 = "Could not find a sqlite corpus at '%s'"
		FAIL2 = "Could not open the sqlite corpus at '%s'"
		DSN   = "file:%s?mode=ro"
	)

	if _, e := os.Stat(pth); e != nil {
		Msg.MAND(fmt.Sprintf(FAIL1, pth))
		Msg.ExitOrHang(0)
	}

	lite, e := sql.Open("sqlite", fmt.Sprintf(DSN, pth))
	if e != nil {
		Msg.MAND(fmt.Sprintf(FAIL2, pth))
		Msg.ExitOrHang(0)
	}

	// modernc sqlite is not safe for concurrent writers; readers are fine, but stay single-connection anyway
	lite.SetMaxOpenConns(1)

	return lite
}
