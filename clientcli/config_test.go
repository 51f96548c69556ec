package clientcli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/mintdb"
	"github.com/sagarc03/mintdb/clientcli"
)

func newTestConfigFile() *clientcli.ConfigFile {
	return &clientcli.ConfigFile{
		Profiles: []clientcli.Profile{
			{Name: "prod", Driver: "postgres", Host: "pg.internal", DBName: "app", User: "svc", Port: 5432, Default: true},
			{Name: "local", Driver: "sqlite", FilePath: "app.db"},
		},
	}
}

func TestGetProfile(t *testing.T) {
	t.Parallel()
	cfg := newTestConfigFile()

	p, err := cfg.GetProfile("local")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", p.Driver)

	// Empty name falls back to the default profile
	p, err = cfg.GetProfile("")
	require.NoError(t, err)
	assert.Equal(t, "prod", p.Name)

	_, err = cfg.GetProfile("staging")
	assert.ErrorIs(t, err, clientcli.ErrProfileNotFound)
}

func TestGetProfile_Empty(t *testing.T) {
	t.Parallel()
	cfg := &clientcli.ConfigFile{}

	_, err := cfg.GetProfile("anything")
	assert.ErrorIs(t, err, clientcli.ErrNoProfiles)
}

func TestGetDefaultProfile_FallsBackToFirst(t *testing.T) {
	t.Parallel()
	cfg := &clientcli.ConfigFile{
		Profiles: []clientcli.Profile{
			{Name: "a", Driver: "sqlite"},
			{Name: "b", Driver: "mysql"},
		},
	}

	p, err := cfg.GetDefaultProfile()
	require.NoError(t, err)
	assert.Equal(t, "a", p.Name)
}

func TestAddUpdateRemoveProfile(t *testing.T) {
	t.Parallel()
	cfg := newTestConfigFile()

	err := cfg.AddProfile(clientcli.Profile{Name: "prod", Driver: "mysql"})
	assert.ErrorIs(t, err, clientcli.ErrProfileExists)

	require.NoError(t, cfg.AddProfile(clientcli.Profile{Name: "staging", Driver: "mariadb", Host: "maria"}))
	assert.Len(t, cfg.Profiles, 3)

	err = cfg.UpdateProfile(clientcli.Profile{Name: "missing", Driver: "mysql"})
	assert.ErrorIs(t, err, clientcli.ErrProfileNotFound)

	require.NoError(t, cfg.UpdateProfile(clientcli.Profile{Name: "staging", Driver: "mariadb", Host: "maria2"}))
	p, err := cfg.GetProfile("staging")
	require.NoError(t, err)
	assert.Equal(t, "maria2", p.Host)

	require.NoError(t, cfg.RemoveProfile("staging"))
	assert.ErrorIs(t, cfg.RemoveProfile("staging"), clientcli.ErrProfileNotFound)
}

func TestSetDefault(t *testing.T) {
	t.Parallel()
	cfg := newTestConfigFile()

	require.NoError(t, cfg.SetDefault("local"))

	p, err := cfg.GetDefaultProfile()
	require.NoError(t, err)
	assert.Equal(t, "local", p.Name)

	// The old default flag is cleared
	prod, err := cfg.GetProfile("prod")
	require.NoError(t, err)
	assert.False(t, prod.Default)

	assert.ErrorIs(t, cfg.SetDefault("missing"), clientcli.ErrProfileNotFound)
}

func TestProfileConfig(t *testing.T) {
	t.Parallel()

	p := clientcli.Profile{
		Name: "prod", Driver: "postgres",
		Host: "pg.internal", DBName: "app", User: "svc", Password: "pw", Port: 6543,
	}
	cfg, err := p.Config()
	require.NoError(t, err)
	assert.Equal(t, mintdb.DriverPostgres, cfg.Driver)
	assert.Equal(t, "pg.internal", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)

	bad := clientcli.Profile{Name: "x", Driver: "oracle"}
	_, err = bad.Config()
	assert.ErrorIs(t, err, mintdb.ErrUnsupportedDriver)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := newTestConfigFile()

	require.NoError(t, clientcli.SaveConfigFile(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := clientcli.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Profiles, loaded.Profiles)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := clientcli.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
