package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine represents a parsed bank statement CSV row.
type StatementLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = outflow, positive = inflow
	Reference   string
}
