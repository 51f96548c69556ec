package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sagarc03/mintdb"
)

var queryCmd = &cobra.Command{
	Use:   "query <sql> [param]...",
	Short: "Run a query and print the rows",
	Long: `Run a query against the configured connection. Additional
arguments are bound positionally as statement parameters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
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

	res, err := m.Query(ctx, args[0], params...)
	if err != nil {
		return err
	}

	printResult(cmd, res)
	fmt.Fprintf(cmd.OutOrStdout(), "(%d rows)\n", res.Len())
	return nil
}

func printResult(cmd *cobra.Command, res *mintdb.Result) {
	if len(res.Columns) == 0 {
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(res.Columns, "\t"))

	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
}
