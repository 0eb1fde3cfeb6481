package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"commerce-lake/internal/domain"
)

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newSummaryCmd(opts *globalOptions) *cobra.Command {
	var (
		dateStr       string
		persist       bool
		withAnalytics bool
		stockFilePath string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the daily summary for one date",
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

			var (
				summary domain.DailySummary
				found   bool
			)
			if persist {
				summary, found, err = e.analytics.WriteDailySummary(cmd.Context(), day)
			} else {
				summary, found, err = e.analytics.DailySummary(cmd.Context(), day)
			}
			if err != nil {
				return err
			}
			if !found {
				fmt.Printf("no enriched order data for %s\n", dateStr)
				return nil
			}

			if !withAnalytics {
				return printJSON(summary)
			}

			report := map[string]any{"summary": summary}
			customers, err := e.analytics.NewCustomers(cmd.Context(), day, day)
			if err != nil {
				return err
			}
			report["new_customers"] = customers

			revenue, err := e.analytics.MonthlyRevenue(cmd.Context(), day.Year(), int(day.Month()))
			if err != nil {
				return err
			}
			report["monthly_revenue"] = revenue

			if stockFilePath != "" {
				initial, err := loadStockFile(stockFilePath)
				if err != nil {
					return err
				}
				levels, err := e.analytics.StockDepletion(cmd.Context(), day, initial)
				if err != nil {
					return err
				}
				report["stock"] = levels
			}
			return printJSON(report)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to summarize (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&persist, "persist", false, "Also write the summary partition")
	cmd.Flags().BoolVar(&withAnalytics, "with-analytics", false, "Include new-customer, monthly-revenue, and (with --stock-file) stock reports")
	cmd.Flags().StringVar(&stockFilePath, "stock-file", "", "YAML file with initial_stock, enables the stock report")
	cmd.MarkFlagRequired("date") //nolint:errcheck
	return cmd
}

// stockFile is the YAML shape of the --stock-file input.
type stockFile struct {
	InitialStock map[int64]int64 `yaml:"initial_stock"`
}

func loadStockFile(path string) (map[int64]int64, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // path is a CLI flag
	if err != nil {
		return nil, err
	}
	var sf stockFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, domain.ErrValidation("invalid stock file %s: %v", path, err)
	}
	return sf.InitialStock, nil
}

func newStockCmd(opts *globalOptions) *cobra.Command {
	var (
		dateStr  string
		filePath string
	)

	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Compute the stock depletion report for one date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDay(dateStr)
			if err != nil {
				return err
			}
			initial, err := loadStockFile(filePath)
			if err != nil {
				return err
			}

			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			levels, err := e.analytics.StockDepletion(cmd.Context(), day, initial)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tINITIAL\tSOLD\tREMAINING")
			for _, l := range levels {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", l.ProductID, l.Initial, l.Sold, l.Remaining)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to report (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filePath, "stock-file", "", "YAML file with initial_stock per product id")
	cmd.MarkFlagRequired("date")       //nolint:errcheck
	cmd.MarkFlagRequired("stock-file") //nolint:errcheck
	return cmd
}

func newNewCustomersCmd(opts *globalOptions) *cobra.Command {
	var startStr, endStr string

	cmd := &cobra.Command{
		Use:   "new-customers",
		Short: "Track first-time customers over a date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseDay(startStr)
			if err != nil {
				return err
			}
			end, err := parseDay(endStr)
			if err != nil {
				return err
			}
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			report, err := e.analytics.NewCustomers(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&endStr, "end", "", "Range end (YYYY-MM-DD, inclusive)")
	cmd.MarkFlagRequired("start") //nolint:errcheck
	cmd.MarkFlagRequired("end")   //nolint:errcheck
	return cmd
}

func newMonthlyRevenueCmd(opts *globalOptions) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "monthly-revenue",
		Short: "Compute the revenue rollup for one month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			rollup, err := e.analytics.MonthlyRevenue(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			return printJSON(rollup)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (e.g. 2024)")
	cmd.Flags().IntVar(&month, "month", 0, "Month (1-12)")
	cmd.MarkFlagRequired("year")  //nolint:errcheck
	cmd.MarkFlagRequired("month") //nolint:errcheck
	return cmd
}
