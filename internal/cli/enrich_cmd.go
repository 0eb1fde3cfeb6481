package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"commerce-lake/internal/domain"
)

func parseDay(s string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrValidation("invalid date %q (want YYYY-MM-DD)", s)
	}
	return day, nil
}

func newEnrichCmd(opts *globalOptions) *cobra.Command {
	var (
		dateStr string
		entity  string
	)

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Enrich the clean partitions for one date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDay(dateStr)
			if err != nil {
				return err
			}
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			if entity != "" {
				et, err := domain.ParseEntityType(entity)
				if err != nil {
					return err
				}
				t, err := e.enrich.Enrich(cmd.Context(), et, day)
				if err != nil {
					return err
				}
				fmt.Printf("enriched %s for %s: %d rows, %d columns\n",
					et, dateStr, t.Len(), len(t.Columns()))
				return nil
			}

			res, err := e.enrich.EnrichAll(cmd.Context(), day)
			if err != nil {
				return err
			}
			for _, et := range res.Enriched {
				fmt.Printf("enriched %s for %s\n", et, dateStr)
			}
			for _, et := range res.Skipped {
				fmt.Printf("skipped %s for %s (no clean partition)\n", et, dateStr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to enrich (YYYY-MM-DD)")
	cmd.Flags().StringVar(&entity, "entity", "", "Restrict to one entity type (clients, products, orders)")
	cmd.MarkFlagRequired("date") //nolint:errcheck
	return cmd
}
