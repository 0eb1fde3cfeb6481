package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newRunsCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent enrichment runs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.metaDB == "" {
				return fmt.Errorf("runs requires --meta-db")
			}
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			runs, err := e.runs.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tENTITY\tDATE\tSTATUS\tROWS\tSTARTED")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
					r.ID, r.Entity, r.Date.Format("2006-01-02"), r.Status,
					r.RowCount, r.StartedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of runs to list (0 uses the default)")
	return cmd
}
