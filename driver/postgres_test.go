package driver_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/sagarc03/mintdb"
	_ "github.com/sagarc03/mintdb/driver"
)

// newPostgresManager starts a disposable postgres container and opens a
// pooled manager against it.
func newPostgresManager(t *testing.T) *mintdb.Manager {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := pgcontainer.Run(ctx,
		"postgres:18-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		pgcontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start postgres container")

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	m := mintdb.NewManager(
		mintdb.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	m.Configure(mintdb.Config{
		Driver:   mintdb.DriverPostgres,
		Host:     host,
		Port:     port.Int(),
		DBName:   "testdb",
		User:     "testuser",
		Password: "testpass",
	})

	_, err = m.Open(ctx, mintdb.OpenOptions{
		Pool:         true,
		MaxOpenConns: 4,
	})
	require.NoError(t, err)

	t.Cleanup(m.Close)
	return m
}

func TestPostgres_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newPostgresManager(t)

	h, err := m.Current(ctx)
	require.NoError(t, err)
	assert.True(t, h.Pooled())

	_, err = m.Exec(ctx, `CREATE TABLE jobs (id BIGINT PRIMARY KEY, state TEXT NOT NULL)`)
	require.NoError(t, err)

	n, err := m.Exec(ctx, `INSERT INTO jobs (id, state) VALUES ($1, $2)`, 42, "active")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	res, err := m.Query(ctx, `SELECT id, state FROM jobs WHERE id = $1 AND state = $2`, 42, "active")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "state"}, res.Columns)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, int64(42), res.Rows[0][0])
	assert.Equal(t, "active", res.Rows[0][1])

	err = m.Transaction(ctx, func(tx mintdb.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO jobs (id, state) VALUES ($1, $2)`, 43, "queued"); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)

	res, err = m.Query(ctx, `SELECT id FROM jobs`)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len(), "rolled-back insert must not be visible")
}

func TestPostgres_BadCredentials(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()
	m := newPostgresManager(t)

	cfg := m.Config()
	cfg.Password = "wrong"
	m.Configure(cfg)

	_, err := m.Open(ctx, mintdb.OpenOptions{})
	assert.ErrorIs(t, err, mintdb.ErrConnect)
}
