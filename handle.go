package mintdb

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OpenOptions controls how a handle is opened.
type OpenOptions struct {
	// Pool opens a pooled handle instead of a single dedicated connection.
	Pool bool
	// Pool tuning; zero values leave the backend's defaults in place.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// Params holds extra driver parameters appended to the DSN.
	Params map[string]string
}

// Handle is an open connection or pool. Exactly one Handle may be current
// on a Manager at a time.
type Handle interface {
	// ID identifies the handle in logs.
	ID() uuid.UUID
	// Driver returns the backend kind the handle was opened for.
	Driver() DriverKind
	// Pooled reports whether the handle is a pool rather than a single
	// dedicated connection.
	Pooled() bool
	// Ping reports whether the handle is still usable.
	Ping(ctx context.Context) error
	// Query runs a statement and collects all rows. With bind parameters
	// the statement is prepared and released on every exit path; without,
	// it is issued directly.
	Query(ctx context.Context, query string, args ...any) (*Result, error)
	// Exec runs a statement and returns the driver-reported rows-affected
	// count, 0 when the driver cannot report one.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	// Begin starts a transaction. On a pooled handle this checks out one
	// dedicated connection; Commit and Rollback return it to the pool.
	Begin(ctx context.Context) (Tx, error)
	// Close releases the handle and everything it owns.
	Close() error
}

// Tx is an in-progress transaction. All statements run on the same
// underlying connection. Commit or Rollback must be called exactly once;
// both release the checked-out connection for pooled handles.
type Tx interface {
	Query(ctx context.Context, query string, args ...any) (*Result, error)
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Commit() error
	Rollback() error
}
