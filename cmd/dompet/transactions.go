package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dompet/dompet/internal/cli"
	"github.com/dompet/dompet/internal/engine"
	"github.com/dompet/dompet/internal/ledger"
	"github.com/dompet/dompet/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, edit, and delete income and expense transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txDate     string
		txType     string
		txCategory string
		txAmount   float64
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a transaction",
		Long:  `Record a new income or expense transaction.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, _, repo, err := initLedger(ctx, nil)
			if err != nil {
				return err
			}
			defer repo.Close()

			_, err = store.Add(ctx, model.Transaction{
				Description: args[0],
				Amount:      txAmount,
				Date:        txDate,
				Type:        model.TransactionType(txType),
				Category:    txCategory,
			})
			return err
		},
	}

	cmd.Flags().Float64Var(&txAmount, "amount", 0, "Transaction amount (required)")
	cmd.Flags().StringVar(&txDate, "date", "", "Transaction date in YYYY-MM-DD form (required)")
	cmd.Flags().StringVar(&txType, "type", "expense", "Transaction type (income, expense)")
	cmd.Flags().StringVar(&txCategory, "category", "", "Category key (required)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		opts       model.FilterOptions
		filterType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display transactions, optionally narrowed by type, category, date range, or a search term.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts.Type = model.TransactionType(filterType)

			store, registry, repo, err := initLedger(ctx, nil)
			if err != nil {
				return err
			}
			defer repo.Close()

			txns := engine.ApplyFilter(store.List(), opts, registry)
			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'dompet tx add' to record one."))
				return nil
			}

			renderTransactions(txns, registry)
			return nil
		},
	}

	cmd.Flags().StringVar(&filterType, "type", "all", "Filter by type (income, expense, all)")
	cmd.Flags().StringVar(&opts.Category, "category", "all", "Filter by category key")
	cmd.Flags().StringVar(&opts.StartDate, "from", "", "Include transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.EndDate, "to", "", "Include transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.SearchTerm, "search", "", "Match against description and category")

	return cmd
}

func editTxCmd() *cobra.Command {
	var (
		txDescription string
		txDate        string
		txType        string
		txCategory    string
		txAmount      float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long:  `Update fields of an existing transaction. Unspecified fields keep their current values.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, _, repo, err := initLedger(ctx, nil)
			if err != nil {
				return err
			}
			defer repo.Close()

			current, ok := store.Get(args[0])
			if !ok {
				return fmt.Errorf("transaction %q not found", args[0])
			}

			if cmd.Flags().Changed("description") {
				current.Description = txDescription
			}
			if cmd.Flags().Changed("amount") {
				current.Amount = txAmount
			}
			if cmd.Flags().Changed("date") {
				current.Date = txDate
			}
			if cmd.Flags().Changed("type") {
				current.Type = model.TransactionType(txType)
			}
			if cmd.Flags().Changed("category") {
				current.Category = txCategory
			}

			_, err = store.Update(ctx, current)
			return err
		},
	}

	cmd.Flags().StringVar(&txDescription, "description", "", "New description")
	cmd.Flags().Float64Var(&txAmount, "amount", 0, "New amount")
	cmd.Flags().StringVar(&txDate, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&txType, "type", "", "New type (income, expense)")
	cmd.Flags().StringVar(&txCategory, "category", "", "New category key")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, _, repo, err := initLedger(ctx, nil)
			if err != nil {
				return err
			}
			defer repo.Close()

			// Confirm deletion
			if !force {
				fmt.Printf("Are you sure you want to delete transaction %s? (y/N): ", args[0])
				var response string
				fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			return store.Remove(ctx, args[0])
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

func renderTransactions(txns []model.Transaction, registry *ledger.CategoryRegistry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Date"),
		headerStyle.Render("Description"),
		headerStyle.Render("Category"),
		headerStyle.Render("Amount"),
		headerStyle.Render("ID"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 30),
		strings.Repeat("-", 20),
		strings.Repeat("-", 10),
		strings.Repeat("-", 36))

	for _, txn := range txns {
		amount := fmt.Sprintf("-%.2f", txn.Amount)
		style := cli.ExpenseStyle
		if txn.Type == model.TypeIncome {
			amount = fmt.Sprintf("+%.2f", txn.Amount)
			style = cli.IncomeStyle
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			txn.Date,
			txn.Description,
			cli.CategoryBadge(registry.Get(txn.Category)),
			style.Render(amount),
			txn.ID)
	}
}
