package model

import "github.com/shopspring/decimal"

// Account represents a row in accounts.csv. Its current balance is never
// stored; it is always derived from the transaction log.
type Account struct {
	ID             int
	Name           string
	OpeningBalance decimal.Decimal // fixed at creation
	IsActive       bool
}
