package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/accounts"
)

func newAccountsCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newAccountsListCommand(dir))
	cmd.AddCommand(newAccountsAddCommand(dir))

	return cmd
}

func newAccountsListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := accounts.Load(*dir)
			if err != nil {
				return err
			}
			cfg := loadConfig(*dir)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tOPENING\tACTIVE")
			for _, a := range svc.All() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", a.ID, a.Name, formatAmount(cfg, a.OpeningBalance), a.IsActive)
			}
			return tw.Flush()
		},
	}
}

func newAccountsAddCommand(dir *string) *cobra.Command {
	var name string
	var opening string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			openingBalance, err := parseAmount(opening)
			if err != nil {
				return err
			}

			svc, err := accounts.Load(*dir)
			if err != nil {
				return err
			}

			acct := svc.Add(name, openingBalance)
			if err := svc.Save(*dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added account %d: %s\n", acct.ID, acct.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&opening, "opening", "0", "opening balance")

	return cmd
}
