package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarc03/mintdb"
)

func TestMySQLDSN(t *testing.T) {
	t.Parallel()

	cfg := mintdb.Config{
		Driver:   mintdb.DriverMySQL,
		Host:     "db.internal",
		DBName:   "app",
		User:     "svc",
		Password: "s3cret",
	}.WithDefaults()

	dsn := mysqlDSN(cfg, nil)
	assert.Equal(t, "svc:s3cret@tcp(db.internal:3306)/app?charset=utf8mb4&parseTime=true", dsn)
}

func TestMySQLDSN_NoCredentials(t *testing.T) {
	t.Parallel()

	cfg := mintdb.Config{Driver: mintdb.DriverMariaDB, DBName: "app"}.WithDefaults()

	dsn := mysqlDSN(cfg, nil)
	assert.Equal(t, "tcp(127.0.0.1:3306)/app?charset=utf8mb4&parseTime=true", dsn)
}

func TestMySQLDSN_ExtraParams(t *testing.T) {
	t.Parallel()

	cfg := mintdb.Config{Driver: mintdb.DriverMySQL, Host: "h", DBName: "d"}.WithDefaults()

	dsn := mysqlDSN(cfg, map[string]string{"timeout": "5s"})
	assert.Contains(t, dsn, "timeout=5s")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestPostgresDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    mintdb.Config
		params map[string]string
		want   string
	}{
		{
			name: "full",
			cfg: mintdb.Config{
				Driver:   mintdb.DriverPostgres,
				Host:     "pg.internal",
				DBName:   "app",
				User:     "svc",
				Password: "s3cret",
			},
			want: "host=pg.internal port=5432 dbname=app user=svc password=s3cret",
		},
		{
			name: "empty fields omitted",
			cfg:  mintdb.Config{Driver: mintdb.DriverPostgres, Host: "pg", DBName: "app"},
			want: "host=pg port=5432 dbname=app",
		},
		{
			name:   "extra params sorted",
			cfg:    mintdb.Config{Driver: mintdb.DriverPostgres, Host: "pg", DBName: "app"},
			params: map[string]string{"sslmode": "disable", "application_name": "mintdb"},
			want:   "host=pg port=5432 dbname=app application_name=mintdb sslmode=disable",
		},
		{
			name: "value with space quoted",
			cfg:  mintdb.Config{Driver: mintdb.DriverPostgres, Host: "pg", DBName: "app", Password: "two words"},
			want: "host=pg port=5432 dbname=app password='two words'",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, postgresDSN(tt.cfg.WithDefaults(), tt.params))
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/var/db/app.db",
		sqliteDSN(mintdb.Config{Driver: mintdb.DriverSQLite, FilePath: "/var/db/app.db"}, nil))

	// DBName is the fallback when no file path is set
	assert.Equal(t, "app.db",
		sqliteDSN(mintdb.Config{Driver: mintdb.DriverSQLite, DBName: "app.db"}, nil))

	assert.Equal(t, "file:app.db?mode=ro",
		sqliteDSN(mintdb.Config{Driver: mintdb.DriverSQLite, FilePath: "app.db"}, map[string]string{"mode": "ro"}))
}

func TestODBCDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    mintdb.Config
		params map[string]string
		want   string
	}{
		{
			name: "dsn based",
			cfg:  mintdb.Config{Driver: mintdb.DriverODBC, DSN: "warehouse", User: "svc", Password: "pw"},
			want: "DSN=warehouse;UID=svc;PWD=pw",
		},
		{
			name: "parameter based",
			cfg: mintdb.Config{
				Driver: mintdb.DriverODBC, Host: "sql.internal", DBName: "app",
				User: "svc", Password: "pw", Port: 1433,
			},
			want: "UID=svc;PWD=pw;Database=app;Server=sql.internal;Port=1433",
		},
		{
			name: "parameter based without port",
			cfg:  mintdb.Config{Driver: mintdb.DriverODBC, Host: "sql.internal", User: "svc"},
			want: "UID=svc;Server=sql.internal",
		},
		{
			name:   "extra params",
			cfg:    mintdb.Config{Driver: mintdb.DriverODBC, DSN: "warehouse"},
			params: map[string]string{"Driver": "{ODBC Driver 18 for SQL Server}"},
			want:   "DSN=warehouse;Driver={ODBC Driver 18 for SQL Server}",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, odbcDSN(tt.cfg, tt.params))
		})
	}
}
