// Package driver implements mintdb's backends on top of database/sql.
//
// Importing the package registers openers for all five driver kinds:
//
//	import _ "github.com/sagarc03/mintdb/driver"
//
// Each backend builds a DSN from the mintdb.Config, opens a database/sql
// handle, and verifies it with a ping before handing it back. A pooled
// handle wraps the *sql.DB directly; a raw handle additionally checks out
// one dedicated *sql.Conn and routes every statement through it.
package driver

import (
	"sort"

	"github.com/sagarc03/mintdb"
)

func init() {
	mintdb.Register(mintdb.DriverMariaDB, openMySQL)
	mintdb.Register(mintdb.DriverMySQL, openMySQL)
	mintdb.Register(mintdb.DriverPostgres, openPostgres)
	mintdb.Register(mintdb.DriverSQLite, openSQLite)
	mintdb.Register(mintdb.DriverODBC, openODBC)
}

// sortedKeys is shared by the DSN builders that emit key/value pairs, so
// the output is stable for a given Config.
func sortedKeys(params map[string]string) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
