package payables

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// NewPlan validates inputs and creates a plan at its first installment.
func NewPlan(planID int, description string, totalAmount decimal.Decimal, installmentCount int, dueDate time.Time) (model.InstallmentPlan, error) {
	if totalAmount.Sign() <= 0 {
		return model.InstallmentPlan{}, model.ValidationError{
			Field:       "total_amount",
			Description: fmt.Sprintf("must be positive, got %s", totalAmount),
		}
	}
	if installmentCount < 1 {
		return model.InstallmentPlan{}, model.ValidationError{
			Field:       "installment_count",
			Description: fmt.Sprintf("must be at least 1, got %d", installmentCount),
		}
	}

	return model.InstallmentPlan{
		ID:                 planID,
		Description:        description,
		TotalAmount:        totalAmount,
		InstallmentCount:   installmentCount,
		CurrentInstallment: 1,
		InstallmentAmount:  installmentAmount(totalAmount, installmentCount),
		DueDate:            dueDate,
		IsSettled:          false,
	}, nil
}

// SettleOne advances a plan by one installment; advancing past the last
// installment settles it. Settled plans are returned unchanged.
func SettleOne(plan model.InstallmentPlan) model.InstallmentPlan {
	if plan.IsSettled {
		return plan
	}
	plan.CurrentInstallment++
	plan.IsSettled = plan.CurrentInstallment > plan.InstallmentCount
	return plan
}

// RecalculateInstallmentAmount re-derives the per-installment amount after a
// total or count edit. Must run before any edited plan is persisted.
func RecalculateInstallmentAmount(plan model.InstallmentPlan) (model.InstallmentPlan, error) {
	if plan.TotalAmount.Sign() <= 0 {
		return model.InstallmentPlan{}, model.ValidationError{
			Field:       "total_amount",
			Description: fmt.Sprintf("must be positive, got %s", plan.TotalAmount),
		}
	}
	if plan.InstallmentCount < 1 {
		return model.InstallmentPlan{}, model.ValidationError{
			Field:       "installment_count",
			Description: fmt.Sprintf("must be at least 1, got %d", plan.InstallmentCount),
		}
	}
	plan.InstallmentAmount = installmentAmount(plan.TotalAmount, plan.InstallmentCount)
	return plan, nil
}

// RemainingBalance is the installment amount times the installments not yet
// settled, zero once the plan is settled. Rounding means this can differ
// from TotalAmount even on a fresh plan (1000 over 3 leaves 999.99).
func RemainingBalance(plan model.InstallmentPlan) decimal.Decimal {
	if plan.IsSettled {
		return decimal.Zero
	}
	left := plan.InstallmentCount - plan.CurrentInstallment + 1
	return plan.InstallmentAmount.Mul(decimal.NewFromInt(int64(left)))
}

// IsOverdue reports whether an unsettled plan's due date has passed.
func IsOverdue(plan model.InstallmentPlan, today time.Time) bool {
	return !plan.IsSettled && plan.DueDate.Before(today)
}

// IsDueWithin reports whether an unsettled plan falls due in the next
// days days, today inclusive.
func IsDueWithin(plan model.InstallmentPlan, today time.Time, days int) bool {
	if plan.IsSettled {
		return false
	}
	limit := today.AddDate(0, 0, days)
	return !plan.DueDate.Before(today) && !plan.DueDate.After(limit)
}

// TotalRemaining sums the remaining balance of every plan, for aggregate
// "total pending" views.
func TotalRemaining(plans []model.InstallmentPlan) decimal.Decimal {
	total := decimal.Zero
	for _, plan := range plans {
		total = total.Add(RemainingBalance(plan))
	}
	return total
}

// installmentAmount is totalAmount / installmentCount rounded half-up to
// 2 decimal places.
func installmentAmount(totalAmount decimal.Decimal, installmentCount int) decimal.Decimal {
	return totalAmount.Div(decimal.NewFromInt(int64(installmentCount))).Round(2)
}
