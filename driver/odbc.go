package driver

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/alexbrainman/odbc" // ODBC driver

	"github.com/sagarc03/mintdb"
)

func openODBC(ctx context.Context, cfg mintdb.Config, opts mintdb.OpenOptions) (mintdb.Handle, error) {
	return open(ctx, cfg, opts, "odbc", odbcDSN(cfg, opts.Params))
}

// odbcDSN builds a semicolon-separated ODBC connection string. A
// configured DSN name wins; otherwise the individual server/database
// fields are emitted.
func odbcDSN(cfg mintdb.Config, params map[string]string) string {
	var parts []string

	if cfg.DSN != "" {
		parts = append(parts, "DSN="+cfg.DSN)
		if cfg.User != "" {
			parts = append(parts, "UID="+cfg.User)
		}
		if cfg.Password != "" {
			parts = append(parts, "PWD="+cfg.Password)
		}
	} else {
		if cfg.User != "" {
			parts = append(parts, "UID="+cfg.User)
		}
		if cfg.Password != "" {
			parts = append(parts, "PWD="+cfg.Password)
		}
		if cfg.DBName != "" {
			parts = append(parts, "Database="+cfg.DBName)
		}
		if cfg.Host != "" {
			parts = append(parts, "Server="+cfg.Host)
		}
		if cfg.Port > 0 {
			parts = append(parts, fmt.Sprintf("Port=%d", cfg.Port))
		}
	}

	for _, k := range sortedKeys(params) {
		parts = append(parts, k+"="+params[k])
	}

	return strings.Join(parts, ";")
}
