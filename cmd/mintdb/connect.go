package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/mintdb"
	"github.com/sagarc03/mintdb/clientcli"
)

// openManager builds a Manager from the loaded config (or a saved profile
// when --profile is set), opens the connection, and returns the Manager.
// The caller owns the Close.
func openManager(ctx context.Context, cmd *cobra.Command) (*mintdb.Manager, error) {
	conn := cfg.Connection

	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		p, err := lookupProfile(name)
		if err != nil {
			return nil, err
		}
		conn, err = p.Config()
		if err != nil {
			return nil, err
		}
	}

	m := mintdb.NewManager()
	m.Configure(conn)

	if _, err := m.Open(ctx, cfg.OpenOptions()); err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}
	return m, nil
}

func lookupProfile(name string) (*clientcli.Profile, error) {
	path, err := clientcli.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	file, err := clientcli.LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return file.GetProfile(name)
}
