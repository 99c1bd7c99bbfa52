package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dompet/dompet/internal/ledger"
	"github.com/dompet/dompet/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List and customize the categories used to group transactions.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(setCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  `Display all categories with their labels, colors, and icons.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, registry, repo, err := initLedger(ctx, nil)
			if err != nil {
				return err
			}
			defer repo.Close()

			var entries []ledger.CategoryEntry
			switch group {
			case "income":
				entries = registry.ListByGroup(model.TypeIncome)
			case "expense":
				entries = registry.ListByGroup(model.TypeExpense)
			case "":
				entries = registry.List()
			default:
				return fmt.Errorf("invalid group %q: must be income or expense", group)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Key"),
				headerStyle.Render("Label"),
				headerStyle.Render("Color"),
				headerStyle.Render("Group"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8))

			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n",
					entry.Key,
					entry.Info.Icon,
					entry.Info.Label,
					entry.Info.Color,
					model.GroupForKey(entry.Key))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Filter by group (income, expense)")

	return cmd
}

func setCategoryCmd() *cobra.Command {
	var (
		label string
		color string
		icon  string
	)

	cmd := &cobra.Command{
		Use:   "set <key>",
		Short: "Create or update a category",
		Long: `Set the label, color, and icon for a category key. Creates the
category if the key is new, otherwise replaces its metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, registry, repo, err := initLedger(ctx, nil)
			if err != nil {
				return err
			}
			defer repo.Close()

			return registry.Upsert(ctx, args[0], model.CategoryInfo{
				Label: label,
				Color: color,
				Icon:  icon,
			})
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Display label (required)")
	cmd.Flags().StringVar(&color, "color", "slate", "Color token (green, blue, amber, ...)")
	cmd.Flags().StringVar(&icon, "icon", "🏷️", "Icon shown next to the label")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}
