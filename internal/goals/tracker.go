package goals

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

var hundred = decimal.NewFromInt(100)

// NewGoal validates inputs and creates an active goal with nothing saved.
// A zero deadline means no deadline.
func NewGoal(goalID int, name string, targetAmount decimal.Decimal, deadline time.Time) (model.Goal, error) {
	if targetAmount.Sign() <= 0 {
		return model.Goal{}, model.ValidationError{
			Field:       "target_amount",
			Description: fmt.Sprintf("must be positive, got %s", targetAmount),
		}
	}

	return model.Goal{
		ID:           goalID,
		Name:         name,
		TargetAmount: targetAmount,
		Deadline:     deadline,
		Status:       model.GoalActive,
	}, nil
}

// ProgressPct returns completion as a percentage clamped to [0, 100].
// A non-positive target (only possible from dirty stored data; creation
// rejects it) reads as 0% rather than dividing by zero.
func ProgressPct(goal model.Goal) decimal.Decimal {
	if goal.TargetAmount.Sign() <= 0 {
		return decimal.Zero
	}
	pct := goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// ApplyCurrentAmount sets the saved amount and applies the automatic status
// flip: an active goal reaching its target completes, a completed goal
// dropping below it reactivates. Paused and cancelled goals keep their
// status no matter the amount.
func ApplyCurrentAmount(goal model.Goal, amount decimal.Decimal) model.Goal {
	goal.CurrentAmount = amount
	switch goal.Status {
	case model.GoalActive:
		if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
			goal.Status = model.GoalCompleted
		}
	case model.GoalCompleted:
		if goal.CurrentAmount.LessThan(goal.TargetAmount) {
			goal.Status = model.GoalActive
		}
	}
	return goal
}

// DaysRemaining returns the days until the deadline, rounded up. The second
// return is false when the goal has no deadline.
func DaysRemaining(goal model.Goal, today time.Time) (int, bool) {
	if goal.Deadline.IsZero() {
		return 0, false
	}
	days := int(math.Ceil(goal.Deadline.Sub(today).Hours() / 24))
	return days, true
}

// DueWithin returns the active goals whose deadline falls in the next
// days days, today inclusive.
func DueWithin(goals []model.Goal, today time.Time, days int) []model.Goal {
	limit := today.AddDate(0, 0, days)
	var due []model.Goal
	for _, goal := range goals {
		if goal.Status != model.GoalActive || goal.Deadline.IsZero() {
			continue
		}
		if !goal.Deadline.Before(today) && !goal.Deadline.After(limit) {
			due = append(due, goal)
		}
	}
	return due
}

// TotalSaved sums the saved amount over all goals regardless of status.
func TotalSaved(goals []model.Goal) decimal.Decimal {
	total := decimal.Zero
	for _, goal := range goals {
		total = total.Add(goal.CurrentAmount)
	}
	return total
}

// TotalTarget sums the target amount over active goals only. Completed and
// paused goals drop out of the "still need to save" figure.
func TotalTarget(goals []model.Goal) decimal.Decimal {
	total := decimal.Zero
	for _, goal := range goals {
		if goal.Status == model.GoalActive {
			total = total.Add(goal.TargetAmount)
		}
	}
	return total
}
