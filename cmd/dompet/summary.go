package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dompet/dompet/internal/cli"
	"github.com/dompet/dompet/internal/engine"
	"github.com/dompet/dompet/internal/model"
)

func summaryCmd() *cobra.Command {
	var (
		opts       model.FilterOptions
		filterType string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense, and balance totals",
		Long:  `Summarize transactions into overall totals and per-category spending.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts.Type = model.TransactionType(filterType)

			store, registry, repo, err := initLedger(ctx, nil)
			if err != nil {
				return err
			}
			defer repo.Close()

			txns := engine.ApplyFilter(store.List(), opts, registry)
			totals := engine.ComputeTotals(txns)

			fmt.Println(cli.TitleStyle.Render("Summary"))
			fmt.Printf("  Income:  %s\n", cli.IncomeStyle.Render(fmt.Sprintf("+%.2f", totals.Income)))
			fmt.Printf("  Expense: %s\n", cli.ExpenseStyle.Render(fmt.Sprintf("-%.2f", totals.Expense)))
			fmt.Printf("  Balance: %.2f\n", totals.Balance)

			byCategory := engine.ByCategory(txns)
			if len(byCategory) == 0 {
				return nil
			}

			keys := make([]string, 0, len(byCategory))
			for key := range byCategory {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, key := range keys {
				fmt.Fprintf(w, "  %s\t%.2f\n", cli.CategoryBadge(registry.Get(key)), byCategory[key])
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&filterType, "type", "all", "Filter by type (income, expense, all)")
	cmd.Flags().StringVar(&opts.Category, "category", "all", "Filter by category key")
	cmd.Flags().StringVar(&opts.StartDate, "from", "", "Include transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.EndDate, "to", "", "Include transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.SearchTerm, "search", "", "Match against description and category")

	cmd.AddCommand(summaryMonthlyCmd())

	return cmd
}

func summaryMonthlyCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show per-category totals for recent months",
		Long:  `Break down expenses by category across a trailing window of calendar months.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if months < 1 || months > 120 {
				return fmt.Errorf("months must be between 1 and 120, got %d", months)
			}

			store, registry, repo, err := initLedger(ctx, nil)
			if err != nil {
				return err
			}
			defer repo.Close()

			buckets := engine.MonthlyBuckets(store.List(), time.Now().UTC(), months, registry)

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			for _, bucket := range buckets {
				fmt.Println(headerStyle.Render(bucket.Label))
				if len(bucket.ByCategory) == 0 {
					fmt.Println(cli.SubtleStyle.Render("  (no expenses)"))
					continue
				}

				labels := make([]string, 0, len(bucket.ByCategory))
				for label := range bucket.ByCategory {
					labels = append(labels, label)
				}
				sort.Strings(labels)

				for _, label := range labels {
					fmt.Printf("  %s\t%.2f\n", label, bucket.ByCategory[label])
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "Number of trailing months to include")

	return cmd
}
