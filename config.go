package mintdb

import "fmt"

// DriverKind identifies a supported database backend.
type DriverKind string

const (
	DriverMariaDB  DriverKind = "mariadb"
	DriverMySQL    DriverKind = "mysql"
	DriverPostgres DriverKind = "postgres"
	DriverSQLite   DriverKind = "sqlite"
	DriverODBC     DriverKind = "odbc"
)

// ParseDriverKind converts a string into a DriverKind.
// Returns ErrUnsupportedDriver for anything outside the closed set.
func ParseDriverKind(s string) (DriverKind, error) {
	k := DriverKind(s)
	if !k.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, s)
	}
	return k, nil
}

// Known reports whether k is one of the supported driver kinds.
func (k DriverKind) Known() bool {
	switch k {
	case DriverMariaDB, DriverMySQL, DriverPostgres, DriverSQLite, DriverODBC:
		return true
	}
	return false
}

// DefaultPort returns the conventional port for k, or 0 when the backend
// has no network port (SQLite, ODBC).
func (k DriverKind) DefaultPort() int {
	switch k {
	case DriverMariaDB, DriverMySQL:
		return 3306
	case DriverPostgres:
		return 5432
	}
	return 0
}

// UsesCredentials reports whether k authenticates with user/password.
func (k DriverKind) UsesCredentials() bool {
	return k != DriverSQLite
}

func (k DriverKind) String() string { return string(k) }

// Config holds the parameters for a single connection target. It is a
// value object: Manager.Configure replaces the stored Config wholesale,
// never field by field.
type Config struct {
	Driver   DriverKind `mapstructure:"driver" yaml:"driver" validate:"required,oneof=mariadb mysql postgres sqlite odbc"`
	Host     string     `mapstructure:"host" yaml:"host,omitempty"`
	DBName   string     `mapstructure:"dbname" yaml:"dbname,omitempty"`
	User     string     `mapstructure:"user" yaml:"user,omitempty"`
	Password string     `mapstructure:"password" yaml:"password,omitempty"`
	Port     int        `mapstructure:"port" yaml:"port,omitempty" validate:"min=0,max=65535"`
	// DSN is the ODBC data source name. When set, it takes precedence
	// over host/dbname/port for ODBC connections.
	DSN string `mapstructure:"dsn" yaml:"dsn,omitempty"`
	// FilePath is the SQLite database file. Falls back to DBName when empty.
	FilePath string `mapstructure:"filepath" yaml:"filepath,omitempty"`
}

// WithDefaults returns a copy of c with the driver's default port applied
// when no port is set. Drivers without a network port keep Port at 0.
func (c Config) WithDefaults() Config {
	if c.Port <= 0 {
		c.Port = c.Driver.DefaultPort()
	}
	return c
}

// Redacted returns a copy of c safe for logging.
func (c Config) Redacted() Config {
	if c.Password != "" {
		c.Password = "[redacted]"
	}
	return c
}
