package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/accounts"
	"github.com/tally-dev/tally/internal/ledger"
)

func newBalancesCommand(dir *string) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show derived account balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acctSvc, err := accounts.Load(*dir)
			if err != nil {
				return err
			}

			txns, err := ledger.NewService(*dir).List()
			if err != nil {
				return err
			}

			cfg := loadConfig(*dir)
			rows := acctSvc.BalanceReport(txns)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tACCOUNT\tBALANCE")
			total := decimal.Zero
			for _, row := range rows {
				if !all && !row.Account.IsActive {
					continue
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", row.Account.ID, row.Account.Name, formatAmount(cfg, row.Balance))
				total = total.Add(row.Balance)
			}
			fmt.Fprintf(tw, "\tTOTAL\t%s\n", formatAmount(cfg, total))
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include inactive accounts")

	return cmd
}
