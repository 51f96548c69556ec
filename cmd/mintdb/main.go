package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/mintdb/config"
	_ "github.com/sagarc03/mintdb/driver"
)

var version = "dev"

// cfg is loaded once by the root command's PersistentPreRunE and read by
// every subcommand.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "mintdb",
	Short:   "Connect to and query SQL databases from the command line",
	Long: `Mintdb connects to MariaDB, MySQL, PostgreSQL, SQLite, and ODBC
backends using MINTDB_* environment variables, config files, CLI flags,
or saved profiles (see "mintdb configure").`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if f, _ := cmd.Flags().GetString("config"); f != "" {
			files = append(files, f)
		}

		var err error
		cfg, err = config.Load(files, cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		setupLogging(cfg.Log.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./mintdb.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "named connection profile (see mintdb configure)")
	rootCmd.PersistentFlags().String("db-driver", "", "driver kind: mariadb, mysql, postgres, sqlite, odbc (env: MINTDB_DRIVER)")
	rootCmd.PersistentFlags().String("db-host", "", "server host (env: MINTDB_HOST)")
	rootCmd.PersistentFlags().String("db-name", "", "database name (env: MINTDB_DBNAME)")
	rootCmd.PersistentFlags().String("db-user", "", "user name (env: MINTDB_USER)")
	rootCmd.PersistentFlags().Int("db-port", 0, "server port, defaulted per driver when unset (env: MINTDB_PORT)")
	rootCmd.PersistentFlags().String("db-dsn", "", "ODBC data source name (env: MINTDB_DSN)")
	rootCmd.PersistentFlags().String("db-file", "", "SQLite database file (env: MINTDB_FILEPATH)")
	rootCmd.PersistentFlags().Bool("pool", false, "open a pooled handle (env: MINTDB_POOL_ENABLED)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
