// Package config loads mintdb connection settings from config files,
// MINTDB_* environment variables, and CLI flags.
//
// Precedence, highest to lowest: flags > environment > config files >
// defaults.
//
// # Environment Variables
//
//	MINTDB_DRIVER    driver kind: mariadb, mysql, postgres, sqlite, odbc
//	MINTDB_HOST      server host
//	MINTDB_DBNAME    database name
//	MINTDB_USER      user name
//	MINTDB_PASSWORD  password (prompted for interactively when empty)
//	MINTDB_PORT      server port (defaulted per driver when unset)
//	MINTDB_DSN       ODBC data source name
//	MINTDB_FILEPATH  SQLite database file
//
// Pool settings live under the pool key (MINTDB_POOL_ENABLED and friends),
// logging under log (MINTDB_LOG_LEVEL).
//
// # Usage
//
//	cfg, err := config.Load(nil, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m := mintdb.NewManager()
//	m.Configure(cfg.Connection)
//	h, err := m.Open(ctx, cfg.OpenOptions())
package config
