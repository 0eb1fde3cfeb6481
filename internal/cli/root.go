// Package cli implements the lake command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "lake",
		Short:         "Commerce lake enrichment and analytics",
		Long:          "Enrich per-day commerce partitions and compute stock, customer, and revenue analytics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "data", "Root of the partitioned data directory")
	rootCmd.PersistentFlags().StringVar(&opts.metaDB, "meta-db", "", "SQLite run-history metastore path (empty disables run history)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newEnrichCmd(opts),
		newSummaryCmd(opts),
		newStockCmd(opts),
		newNewCustomersCmd(opts),
		newMonthlyRevenueCmd(opts),
		newRunsCmd(opts),
	)
	return rootCmd
}

type globalOptions struct {
	dataDir  string
	metaDB   string
	logLevel string
}
