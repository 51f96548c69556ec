package mintdb

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Manager owns at most one current Handle. The slot is mutex-guarded so a
// Manager can be shared, but the intended shape is one logical session per
// Manager; callers that need independent connections should hold
// independent Managers.
type Manager struct {
	mu      sync.Mutex
	cfg     Config
	current Handle
	prompt  PasswordPromptFunc
	log     *slog.Logger
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for quiet-close and lifecycle events.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) { m.log = l }
}

// WithPasswordPrompt replaces the interactive prompt used when the
// configured password is empty.
func WithPasswordPrompt(fn PasswordPromptFunc) ManagerOption {
	return func(m *Manager) { m.prompt = fn }
}

// NewManager returns a Manager with no configuration and no current handle.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{prompt: PromptPassword}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	return m
}

// Configure stores cfg, replacing any prior configuration entirely. It
// performs no I/O and never fails; an unrecognized driver kind surfaces as
// ErrUnsupportedDriver from the next Open.
func (m *Manager) Configure(cfg Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
}

// Config returns the stored configuration with defaults applied.
func (m *Manager) Config() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.WithDefaults()
}

// Open opens a handle for the stored configuration and makes it current.
// Any previous current handle is closed first, quietly. When the
// configured password is empty and the driver authenticates with
// credentials, the password prompt runs before connecting.
func (m *Manager) Open(ctx context.Context, opts OpenOptions) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeCurrent()

	cfg := m.cfg.WithDefaults()
	open, ok := opener(cfg.Driver)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	if cfg.Password == "" && cfg.Driver.UsesCredentials() {
		pw, err := m.prompt()
		if err != nil {
			return nil, fmt.Errorf("prompt password: %w", err)
		}
		cfg.Password = pw
	}

	h, err := open(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}

	m.current = h
	m.log.Info("connection opened",
		"driver", cfg.Driver, "pooled", h.Pooled(), "id", h.ID())
	return h, nil
}

// Close closes the current handle, if any. Failures are logged, never
// returned, and the slot is cleared unconditionally. Calling Close with no
// current handle is a no-op.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCurrent()
}

// closeCurrent must be called with m.mu held.
func (m *Manager) closeCurrent() {
	if m.current == nil {
		return
	}
	if err := m.current.Close(); err != nil {
		m.log.Warn("close failed", "id", m.current.ID(), "err", err)
	} else {
		m.log.Debug("connection closed", "id", m.current.ID())
	}
	m.current = nil
}

// Current returns the current handle after checking it is still valid.
// Returns ErrNoConnection when nothing is open and ErrInvalidConnection
// when the handle no longer answers a ping.
func (m *Manager) Current(ctx context.Context) (Handle, error) {
	m.mu.Lock()
	h := m.current
	m.mu.Unlock()

	if h == nil {
		return nil, ErrNoConnection
	}
	if err := h.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConnection, err)
	}
	return h, nil
}

// Query runs a statement on the current handle and collects all rows.
// Bind parameters are positional, in argument order.
func (m *Manager) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	h, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	return h.Query(ctx, query, args...)
}

// Exec runs a statement on the current handle and returns the rows
// affected, 0 when the driver cannot report a count.
func (m *Manager) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	h, err := m.Current(ctx)
	if err != nil {
		return 0, err
	}
	return h.Exec(ctx, query, args...)
}

// Transaction begins a transaction on the current handle, runs fn, and
// commits when fn returns nil or rolls back and returns fn's error
// unchanged otherwise. On pooled handles the transaction runs on one
// checked-out connection, which is returned to the pool on every exit
// path, panics included.
func (m *Manager) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	h, err := m.Current(ctx)
	if err != nil {
		return err
	}

	tx, err := h.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				m.log.Warn("rollback failed", "id", h.ID(), "err", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			m.log.Warn("rollback failed", "id", h.ID(), "err", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// defaultManager backs the package-level convenience functions for the
// one-session-per-process use. Programs that juggle several connections
// should create their own Managers.
var defaultManager = NewManager()

// Default returns the package-level Manager.
func Default() *Manager { return defaultManager }

// Configure stores cfg on the default Manager.
func Configure(cfg Config) { defaultManager.Configure(cfg) }

// Open opens a handle on the default Manager.
func Open(ctx context.Context, opts OpenOptions) (Handle, error) {
	return defaultManager.Open(ctx, opts)
}

// Close closes the default Manager's current handle.
func Close() { defaultManager.Close() }

// Current returns the default Manager's current handle.
func Current(ctx context.Context) (Handle, error) {
	return defaultManager.Current(ctx)
}

// Query runs a statement on the default Manager.
func Query(ctx context.Context, query string, args ...any) (*Result, error) {
	return defaultManager.Query(ctx, query, args...)
}

// Exec runs a statement on the default Manager.
func Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return defaultManager.Exec(ctx, query, args...)
}

// Transaction runs fn in a transaction on the default Manager.
func Transaction(ctx context.Context, fn func(tx Tx) error) error {
	return defaultManager.Transaction(ctx, fn)
}
