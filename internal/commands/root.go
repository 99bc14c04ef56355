package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal finance dashboard over plain CSV files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "data directory")

	rootCmd.AddCommand(newInitCommand(&dir))
	rootCmd.AddCommand(newAccountsCommand(&dir))
	rootCmd.AddCommand(newBalancesCommand(&dir))
	rootCmd.AddCommand(newTxCommand(&dir))
	rootCmd.AddCommand(newPayablesCommand(&dir))
	rootCmd.AddCommand(newGoalsCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))

	return rootCmd
}
