package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/mintdb"
)

// Config is the root configuration for mintdb tooling. Connection fields
// sit at the top level so the environment variables stay flat:
// MINTDB_DRIVER, MINTDB_HOST, MINTDB_DBNAME, MINTDB_USER, MINTDB_PASSWORD,
// MINTDB_PORT, MINTDB_DSN, MINTDB_FILEPATH.
type Config struct {
	Connection mintdb.Config `mapstructure:",squash"`
	Pool       PoolConfig    `mapstructure:"pool"`
	Log        LogConfig     `mapstructure:"log"`
}

// PoolConfig holds pooling configuration.
type PoolConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	MaxOpenConns    int  `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int  `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int  `mapstructure:"conn_max_lifetime" validate:"min=0"` // seconds
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// OpenOptions converts the pool settings into mintdb.OpenOptions.
func (c *Config) OpenOptions() mintdb.OpenOptions {
	return mintdb.OpenOptions{
		Pool:            c.Pool.Enabled,
		MaxOpenConns:    c.Pool.MaxOpenConns,
		MaxIdleConns:    c.Pool.MaxIdleConns,
		ConnMaxLifetime: time.Duration(c.Pool.ConnMaxLifetime) * time.Second,
	}
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"db-driver": "driver",
	"db-host":   "host",
	"db-name":   "dbname",
	"db-user":   "user",
	"db-port":   "port",
	"db-dsn":    "dsn",
	"db-file":   "filepath",
	"pool":      "pool.enabled",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("driver", "sqlite")
	v.SetDefault("filepath", "mintdb.db")

	// Empty defaults register the keys so AutomaticEnv picks them up
	// during Unmarshal.
	v.SetDefault("host", "")
	v.SetDefault("dbname", "")
	v.SetDefault("user", "")
	v.SetDefault("password", "")
	v.SetDefault("port", 0)
	v.SetDefault("dsn", "")

	v.SetDefault("pool.enabled", false)
	v.SetDefault("pool.max_open_conns", 0)
	v.SetDefault("pool.max_idle_conns", 0)
	v.SetDefault("pool.conn_max_lifetime", 0)

	v.SetDefault("log.level", "info")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("mintdb")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix("MINTDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
