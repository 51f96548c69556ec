// Package mintdb is a thin convenience layer over database/sql for
// connecting to MariaDB, MySQL, PostgreSQL, SQLite, and ODBC backends.
//
// It stores connection parameters as an immutable Config, opens either a
// raw (single dedicated connection) or pooled handle, and tracks one
// "current" handle per Manager with passthrough Query, Exec, and
// Transaction helpers.
//
// # Key Components
//
//   - Config: connection parameters with per-driver port defaults
//   - Manager: owns at most one current Handle; all operations go through it
//   - Handle: raw or pooled connection, opened by a registered driver
//   - Result: column-ordered tabular query result
//
// Backends register themselves the same way database/sql drivers do; a
// blank import of the driver package wires in all five:
//
//	import _ "github.com/sagarc03/mintdb/driver"
//
// # Example Usage
//
//	m := mintdb.NewManager()
//	m.Configure(mintdb.Config{
//	    Driver:   mintdb.DriverPostgres,
//	    Host:     "localhost",
//	    DBName:   "app",
//	    User:     "app",
//	    Password: "secret",
//	})
//
//	h, err := m.Open(ctx, mintdb.OpenOptions{Pool: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	res, err := m.Query(ctx, "SELECT id, name FROM users WHERE state = $1", "active")
//
// Close never returns an error: failures while tearing down a handle are
// logged and swallowed so that closing can always be used for best-effort
// cleanup. See the config package for MINTDB_* environment loading and the
// clientcli package for named connection profiles.
package mintdb
