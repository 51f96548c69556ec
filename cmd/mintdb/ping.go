package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Open a connection and verify it answers",
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	m, err := openManager(ctx, cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	h, err := m.Current(ctx)
	if err != nil {
		return err
	}

	slog.Info("connection ok", "driver", h.Driver(), "pooled", h.Pooled())
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", h.Driver())
	return nil
}
