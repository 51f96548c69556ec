package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <sql> [param]...",
	Short: "Run a statement and print the rows affected",
	Long: `Run an INSERT, UPDATE, DELETE, or DDL statement against the
configured connection. Additional arguments are bound positionally as
statement parameters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	m, err := openManager(ctx, cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	params := make([]any, 0, len(args)-1)
	for _, a := range args[1:] {
		params = append(params, a)
	}

	n, err := m.Exec(ctx, args[0], params...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rows affected: %d\n", n)
	return nil
}
