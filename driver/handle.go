package driver

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sagarc03/mintdb"
)

// session is the statement surface shared by *sql.DB, *sql.Conn, and
// *sql.Tx.
type session interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// handle implements mintdb.Handle over database/sql. conn is nil for
// pooled handles; for raw handles it is the one dedicated connection every
// statement runs on.
type handle struct {
	id   uuid.UUID
	kind mintdb.DriverKind
	db   *sql.DB
	conn *sql.Conn
}

// open opens a database/sql handle for the given driver name and DSN,
// applies pool tuning, and pings before returning. Failures wrap
// mintdb.ErrConnect.
func open(ctx context.Context, cfg mintdb.Config, opts mintdb.OpenOptions, driverName, dsn string) (*handle, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", mintdb.ErrConnect, cfg.Driver, err)
	}

	if opts.Pool {
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
		if opts.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(opts.ConnMaxLifetime)
		}
	} else {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", mintdb.ErrConnect, cfg.Driver, err)
	}

	h := &handle{id: uuid.New(), kind: cfg.Driver, db: db}
	if !opts.Pool {
		conn, err := db.Conn(ctx)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: checkout %s: %v", mintdb.ErrConnect, cfg.Driver, err)
		}
		h.conn = conn
	}
	return h, nil
}

func (h *handle) ID() uuid.UUID { return h.id }

func (h *handle) Driver() mintdb.DriverKind { return h.kind }

func (h *handle) Pooled() bool { return h.conn == nil }

func (h *handle) session() session {
	if h.conn != nil {
		return h.conn
	}
	return h.db
}

func (h *handle) Ping(ctx context.Context) error {
	if h.conn != nil {
		return h.conn.PingContext(ctx)
	}
	return h.db.PingContext(ctx)
}

func (h *handle) Query(ctx context.Context, query string, args ...any) (*mintdb.Result, error) {
	return queryResult(ctx, h.session(), query, args...)
}

func (h *handle) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return execAffected(ctx, h.session(), query, args...)
}

func (h *handle) Begin(ctx context.Context) (mintdb.Tx, error) {
	if h.conn != nil {
		sqlTx, err := h.conn.BeginTx(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("begin: %w", err)
		}
		return &tx{tx: sqlTx}, nil
	}

	conn, err := h.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	sqlTx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("begin: %w", err)
	}
	return &tx{tx: sqlTx, conn: conn}, nil
}

func (h *handle) Close() error {
	if h.conn != nil {
		err := h.conn.Close()
		if dbErr := h.db.Close(); err == nil {
			err = dbErr
		}
		return err
	}
	return h.db.Close()
}

// tx implements mintdb.Tx. conn is non-nil only when the transaction runs
// on a connection checked out of a pooled handle; release always returns
// it to the pool.
type tx struct {
	tx   *sql.Tx
	conn *sql.Conn
}

func (t *tx) Query(ctx context.Context, query string, args ...any) (*mintdb.Result, error) {
	return queryResult(ctx, t.tx, query, args...)
}

func (t *tx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return execAffected(ctx, t.tx, query, args...)
}

func (t *tx) Commit() error {
	defer t.release()
	return t.tx.Commit()
}

func (t *tx) Rollback() error {
	defer t.release()
	return t.tx.Rollback()
}

func (t *tx) release() {
	if t.conn != nil {
		_ = t.conn.Close()
		t.conn = nil
	}
}

func queryResult(ctx context.Context, s session, query string, args ...any) (*mintdb.Result, error) {
	if len(args) == 0 {
		rows, err := s.QueryContext(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("query: %w", err)
		}
		defer func() { _ = rows.Close() }()
		return collectRows(rows)
	}

	stmt, err := s.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return collectRows(rows)
}

func execAffected(ctx context.Context, s session, query string, args ...any) (int64, error) {
	res, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Some statements and drivers cannot report a count.
		slog.Debug("rows affected unavailable", "err", err)
		return 0, nil
	}
	return n, nil
}

func collectRows(rows *sql.Rows) (*mintdb.Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	res := &mintdb.Result{Columns: cols}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		for i, v := range vals {
			// Driver-owned byte buffers are reused between scans.
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		res.Rows = append(res.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return res, nil
}
