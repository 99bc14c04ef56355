package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activity"
	"github.com/tally-dev/tally/internal/importer"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

func newImportCommand(dir *string) *cobra.Command {
	var accountID int
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank statement CSVs from the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			files, err := importer.Scan(*dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
				return nil
			}

			svc := ledger.NewService(*dir)
			for _, file := range files {
				imported, err := importFile(svc, parser, file, accountID)
				if err != nil {
					return fmt.Errorf("importing %s: %w", file.Name, err)
				}

				if err := importer.MarkProcessed(*dir, file.Name); err != nil {
					return err
				}

				entry := activity.New(activity.ActionImport,
					fmt.Sprintf("%s: %d transactions", file.Name, imported), accountID)
				if err := activity.Append(*dir, []activity.Entry{entry}); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", imported, file.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&accountID, "account", 0, "account to post imported lines against (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&format, "format", "generic", "statement format")

	return cmd
}

func importFile(svc *ledger.Service, parser importer.Parser, file importer.FileInfo, accountID int) (int, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	lines, err := parser.Parse(f)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, nil
	}

	nextID, err := svc.NextID()
	if err != nil {
		return 0, err
	}

	txns := make([]model.Transaction, len(lines))
	for i, line := range lines {
		txns[i] = importer.ToPosting(line, nextID+i, accountID)
	}

	if err := svc.Append(txns); err != nil {
		return 0, err
	}
	return len(txns), nil
}
