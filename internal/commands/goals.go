package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activity"
	"github.com/tally-dev/tally/internal/goals"
	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

func newGoalsCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(newGoalsListCommand(dir))
	cmd.AddCommand(newGoalsAddCommand(dir))
	cmd.AddCommand(newGoalsSetCommand(dir))
	cmd.AddCommand(newGoalsStatusCommand(dir))

	return cmd
}

func newGoalsListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := goals.NewService(*dir).List()
			if err != nil {
				return err
			}
			cfg := loadConfig(*dir)
			now := today()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tGOAL\tSAVED\tTARGET\tPROGRESS\tDEADLINE\tSTATUS")
			for _, goal := range all {
				deadline := "-"
				if days, ok := goals.DaysRemaining(goal, now); ok {
					deadline = fmt.Sprintf("%s (%dd)", goal.Deadline.Format(dateFormat), days)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s%%\t%s\t%s\n",
					goal.ID, goal.Name,
					formatAmount(cfg, goal.CurrentAmount),
					formatAmount(cfg, goal.TargetAmount),
					goals.ProgressPct(goal).StringFixed(1),
					deadline, goal.Status)
			}
			fmt.Fprintf(tw, "\tTOTAL\t%s\t%s\t\t\t\n",
				formatAmount(cfg, goals.TotalSaved(all)),
				formatAmount(cfg, goals.TotalTarget(all)))
			return tw.Flush()
		},
	}
}

func newGoalsAddCommand(dir *string) *cobra.Command {
	var name, target, deadline string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targetAmount, err := parseAmount(target)
			if err != nil {
				return err
			}

			var due time.Time
			if deadline != "" {
				due, err = parseDate(deadline)
				if err != nil {
					return err
				}
			}

			goal, err := goals.NewService(*dir).Add(name, targetAmount, due)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %d: %s\n", goal.ID, goal.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&target, "target", "", "target amount (required)")
	_ = cmd.MarkFlagRequired("target")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline YYYY-MM-DD (optional)")

	return cmd
}

func newGoalsSetCommand(dir *string) *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "set <goal-id>",
		Short: "Update a goal's saved amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := id.Parse(args[0])
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}

			goal, err := goals.NewService(*dir).ApplyCurrentAmount(goalID, amt)
			if err != nil {
				return err
			}

			entry := activity.New(activity.ActionGoalUpdate, goal.Name, goal.ID)
			if err := activity.Append(*dir, []activity.Entry{entry}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Goal %d at %s%% (%s)\n",
				goal.ID, goals.ProgressPct(goal).StringFixed(1), goal.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "new saved amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newGoalsStatusCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <goal-id> <active|paused|cancelled>",
		Short: "Set a goal's status directly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := id.Parse(args[0])
			if err != nil {
				return err
			}

			status := model.GoalStatus(args[1])
			switch status {
			case model.GoalActive, model.GoalPaused, model.GoalCancelled:
			default:
				return fmt.Errorf("invalid status %q (want active, paused or cancelled)", args[1])
			}

			goal, err := goals.NewService(*dir).SetStatus(goalID, status)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Goal %d is now %s\n", goal.ID, goal.Status)
			return nil
		},
	}

	return cmd
}
