package driver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/go-sql-driver/mysql" // MySQL/MariaDB driver

	"github.com/sagarc03/mintdb"
)

// openMySQL serves both the mysql and mariadb kinds; the wire protocol and
// the database/sql driver are the same.
func openMySQL(ctx context.Context, cfg mintdb.Config, opts mintdb.OpenOptions) (mintdb.Handle, error) {
	cfg = cfg.WithDefaults()

	h, err := open(ctx, cfg, opts, "mysql", mysqlDSN(cfg, opts.Params))
	if err != nil {
		return nil, err
	}

	// utf8mb4 for the session, in addition to the charset DSN parameter
	// that covers connections the pool opens later.
	if _, err := h.Exec(ctx, "SET NAMES utf8mb4"); err != nil {
		_ = h.Close()
		return nil, fmt.Errorf("set charset: %w", err)
	}
	return h, nil
}

func mysqlDSN(cfg mintdb.Config, params map[string]string) string {
	var b strings.Builder

	if cfg.User != "" {
		b.WriteString(cfg.User)
		if cfg.Password != "" {
			b.WriteByte(':')
			b.WriteString(cfg.Password)
		}
		b.WriteByte('@')
	}

	host := cfg.Host
	if host == "" {
		host = "127.0.0.1"
	}
	fmt.Fprintf(&b, "tcp(%s:%d)/%s", host, cfg.Port, cfg.DBName)

	q := url.Values{}
	q.Set("charset", "utf8mb4")
	q.Set("parseTime", "true")
	for k, v := range params {
		q.Set(k, v)
	}
	b.WriteByte('?')
	b.WriteString(q.Encode())

	return b.String()
}
