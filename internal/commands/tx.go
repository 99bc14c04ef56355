package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

func newTxCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record transactions",
	}

	cmd.AddCommand(newTxAddCommand(dir))
	cmd.AddCommand(newTxTransferCommand(dir))

	return cmd
}

func newTxAddCommand(dir *string) *cobra.Command {
	var date, desc, amount, kind string
	var accountID, categoryID int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a posting (inflow, outflow or investment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}

			k := model.TransactionKind(kind)
			switch k {
			case model.KindInflow, model.KindOutflow, model.KindInvestment:
			default:
				return fmt.Errorf("invalid kind %q (want inflow, outflow or investment)", kind)
			}

			svc := ledger.NewService(*dir)
			txnID, err := svc.NextID()
			if err != nil {
				return err
			}

			posting := model.Posting{
				ID:          txnID,
				Date:        d,
				Description: desc,
				Amount:      amt,
				Kind:        k,
				AccountID:   accountID,
				CategoryID:  categoryID,
			}
			if err := svc.Append([]model.Transaction{posting}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded transaction %d\n", txnID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	cmd.Flags().StringVar(&amount, "amount", "", "signed amount, positive = inflow (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&kind, "kind", "outflow", "inflow, outflow or investment")
	cmd.Flags().IntVar(&accountID, "account", 0, "account to post against (0 = unassigned)")
	cmd.Flags().IntVar(&categoryID, "category", 0, "category id (0 = uncategorized)")

	return cmd
}

func newTxTransferCommand(dir *string) *cobra.Command {
	var date, desc, amount string
	var from, to int

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Record a transfer between two accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}
			if from == to {
				return model.ValidationError{
					Field:       "transfer",
					Description: fmt.Sprintf("source and destination are both account %d", from),
				}
			}

			svc := ledger.NewService(*dir)
			txnID, err := svc.NextID()
			if err != nil {
				return err
			}

			transfer := model.Transfer{
				ID:                   txnID,
				Date:                 d,
				Description:          desc,
				Amount:               amt,
				SourceAccountID:      from,
				DestinationAccountID: to,
			}
			if err := svc.Append([]model.Transaction{transfer}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded transfer %d\n", txnID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transfer date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	cmd.Flags().StringVar(&amount, "amount", "", "transfer amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().IntVar(&from, "from", 0, "source account id (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().IntVar(&to, "to", 0, "destination account id (required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
