package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentPlan represents a row in payables.csv: a multi-installment
// payable. CurrentInstallment is 1-based and starts at 1; the plan is
// settled once it passes InstallmentCount.
type InstallmentPlan struct {
	ID                 int
	Description        string
	TotalAmount        decimal.Decimal
	InstallmentCount   int
	CurrentInstallment int
	// InstallmentAmount is derived: TotalAmount / InstallmentCount, rounded
	// half-up to 2 decimal places. Never set directly.
	InstallmentAmount decimal.Decimal
	DueDate           time.Time
	IsSettled         bool
}
