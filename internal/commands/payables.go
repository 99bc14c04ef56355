package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activity"
	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/payables"
)

func newPayablesCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payables",
		Short: "Manage installment plans",
	}

	cmd.AddCommand(newPayablesListCommand(dir))
	cmd.AddCommand(newPayablesAddCommand(dir))
	cmd.AddCommand(newPayablesSettleCommand(dir))
	cmd.AddCommand(newPayablesEditCommand(dir))

	return cmd
}

func newPayablesListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installment plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := payables.NewService(*dir).List()
			if err != nil {
				return err
			}
			cfg := loadConfig(*dir)
			now := today()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDESCRIPTION\tINSTALLMENT\tAMOUNT\tDUE\tSTATE")
			for _, plan := range plans {
				state := "pending"
				switch {
				case plan.IsSettled:
					state = "settled"
				case payables.IsOverdue(plan, now):
					state = "overdue"
				case payables.IsDueWithin(plan, now, cfg.Alerts.DueSoonDays):
					state = "due soon"
				}
				fmt.Fprintf(tw, "%d\t%s\t%d/%d\t%s\t%s\t%s\n",
					plan.ID, plan.Description,
					plan.CurrentInstallment, plan.InstallmentCount,
					formatAmount(cfg, plan.InstallmentAmount),
					plan.DueDate.Format(dateFormat), state)
			}
			fmt.Fprintf(tw, "\tTOTAL PENDING\t\t%s\t\t\n", formatAmount(cfg, payables.TotalRemaining(plans)))
			return tw.Flush()
		},
	}
}

func newPayablesAddCommand(dir *string) *cobra.Command {
	var desc, total, due string
	var count int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an installment plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totalAmount, err := parseAmount(total)
			if err != nil {
				return err
			}
			dueDate, err := parseDate(due)
			if err != nil {
				return err
			}

			plan, err := payables.NewService(*dir).Add(desc, totalAmount, count, dueDate)
			if err != nil {
				return err
			}

			cfg := loadConfig(*dir)
			fmt.Fprintf(cmd.OutOrStdout(), "Added plan %d: %d installments of %s\n",
				plan.ID, plan.InstallmentCount, formatAmount(cfg, plan.InstallmentAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "plan description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&total, "total", "", "total amount (required)")
	_ = cmd.MarkFlagRequired("total")
	cmd.Flags().IntVar(&count, "installments", 1, "number of installments")
	cmd.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newPayablesSettleCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "settle <plan-id>",
		Short: "Settle one installment of a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := id.Parse(args[0])
			if err != nil {
				return err
			}

			plan, err := payables.NewService(*dir).SettleOne(planID)
			if err != nil {
				return err
			}

			entry := activity.New(activity.ActionSettle, plan.Description, plan.ID)
			if err := activity.Append(*dir, []activity.Entry{entry}); err != nil {
				return err
			}

			if plan.IsSettled {
				fmt.Fprintf(cmd.OutOrStdout(), "Plan %d fully settled\n", plan.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Plan %d at installment %d of %d\n",
					plan.ID, plan.CurrentInstallment, plan.InstallmentCount)
			}
			return nil
		},
	}
}

func newPayablesEditCommand(dir *string) *cobra.Command {
	var total string
	var count int

	cmd := &cobra.Command{
		Use:   "edit <plan-id>",
		Short: "Edit a plan's total amount and installment count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := id.Parse(args[0])
			if err != nil {
				return err
			}
			totalAmount, err := parseAmount(total)
			if err != nil {
				return err
			}

			plan, err := payables.NewService(*dir).Update(planID, totalAmount, count)
			if err != nil {
				return err
			}

			cfg := loadConfig(*dir)
			fmt.Fprintf(cmd.OutOrStdout(), "Plan %d now %d installments of %s\n",
				plan.ID, plan.InstallmentCount, formatAmount(cfg, plan.InstallmentAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&total, "total", "", "new total amount (required)")
	_ = cmd.MarkFlagRequired("total")
	cmd.Flags().IntVar(&count, "installments", 1, "new installment count")

	return cmd
}
