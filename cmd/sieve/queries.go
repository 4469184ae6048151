package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"mercator-hq/sieve/pkg/criteria"
	"mercator-hq/sieve/pkg/report"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List the built-in queries",
	Long:  `List the built-in query names with their titles and criteria. Pass names to run --query.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTITLE\tCRITERIA")
		for _, q := range report.DemoQueries() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", q.Name, q.Title, criteria.String(q.Criteria))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(queriesCmd)
}
