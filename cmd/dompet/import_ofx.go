package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dompet/dompet/internal/model"
	"github.com/dompet/dompet/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank.

Examples:
  # Import single file
  dompet import-ofx ~/Downloads/chase_jan_2024.qfx

  # Import all QFX files in a directory
  dompet import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing OFX files...",
		"file_count", len(allFiles),
		"dry_run", dryRun)

	var allTransactions []model.Transaction
	fileResults := make(map[string]int)

	parser := ofx.NewParser()

	// Process each file
	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file",
				"file", filePath,
				"error", err)
			continue
		}

		transactions, err := parser.ParseFile(f)
		f.Close()

		if err != nil {
			slog.Error("Failed to parse OFX file",
				"file", filePath,
				"error", err)
			continue
		}

		if len(transactions) == 0 {
			slog.Warn("No transactions found in file",
				"file", filepath.Base(filePath))
			continue
		}

		allTransactions = append(allTransactions, transactions...)
		fileResults[filepath.Base(filePath)] = len(transactions)
	}

	if len(allTransactions) == 0 {
		slog.Warn("No transactions found in any file")
		return nil
	}

	// Show summary
	fmt.Println("\n📁 File import summary:")
	for file, count := range fileResults {
		fmt.Printf("  - %s: %d transactions\n", file, count)
	}

	if dryRun {
		for _, txn := range allTransactions {
			fmt.Printf("  %s | %s | %s %.2f | %s\n",
				txn.Date, txn.Description, txn.Type, txn.Amount, txn.Category)
		}
		slog.Info("Dry run complete, no data saved")
		return nil
	}

	store, _, repo, err := initLedger(ctx, nil)
	if err != nil {
		return err
	}
	defer repo.Close()

	bar := progressbar.NewOptions(len(allTransactions),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing transactions..."))

	saved := 0
	for _, txn := range allTransactions {
		if _, err := store.Add(ctx, txn); err != nil {
			slog.Error("Failed to save transaction",
				"description", txn.Description,
				"error", err)
		} else {
			saved++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Println()

	slog.Info("Import complete",
		"saved", saved,
		"failed", len(allTransactions)-saved)

	return nil
}
