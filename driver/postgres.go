package driver

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"github.com/sagarc03/mintdb"
)

func openPostgres(ctx context.Context, cfg mintdb.Config, opts mintdb.OpenOptions) (mintdb.Handle, error) {
	cfg = cfg.WithDefaults()
	return open(ctx, cfg, opts, "pgx", postgresDSN(cfg, opts.Params))
}

// postgresDSN builds a key/value connection string in libpq format, which
// pgx accepts directly. Empty fields are omitted.
func postgresDSN(cfg mintdb.Config, params map[string]string) string {
	var parts []string

	add := func(key, value string) {
		if value == "" {
			return
		}
		parts = append(parts, key+"="+quotePostgresValue(value))
	}

	add("host", cfg.Host)
	if cfg.Port > 0 {
		parts = append(parts, fmt.Sprintf("port=%d", cfg.Port))
	}
	add("dbname", cfg.DBName)
	add("user", cfg.User)
	add("password", cfg.Password)
	for _, k := range sortedKeys(params) {
		add(k, params[k])
	}

	return strings.Join(parts, " ")
}

// quotePostgresValue quotes a libpq value when it contains spaces or
// quotes, per the keyword/value connection string rules.
func quotePostgresValue(v string) string {
	if !strings.ContainsAny(v, " '\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
