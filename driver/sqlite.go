package driver

import (
	"context"
	"net/url"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sagarc03/mintdb"
)

func openSQLite(ctx context.Context, cfg mintdb.Config, opts mintdb.OpenOptions) (mintdb.Handle, error) {
	return open(ctx, cfg, opts, "sqlite", sqliteDSN(cfg, opts.Params))
}

// sqliteDSN resolves the database file: FilePath when set, DBName
// otherwise. SQLite has no host, port, or credentials.
func sqliteDSN(cfg mintdb.Config, params map[string]string) string {
	path := cfg.FilePath
	if path == "" {
		path = cfg.DBName
	}
	if len(params) == 0 {
		return path
	}

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "file:" + path + "?" + q.Encode()
}
