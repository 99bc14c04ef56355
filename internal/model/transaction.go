package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies rows in the transaction log.
type TransactionKind string

const (
	KindInflow     TransactionKind = "inflow"
	KindOutflow    TransactionKind = "outflow"
	KindInvestment TransactionKind = "investment"
	KindTransfer   TransactionKind = "transfer"
)

// LegRole describes how a single transaction touches a given account.
type LegRole string

const (
	RolePosted LegRole = "posted"
	RoleDebit  LegRole = "debit"
	RoleCredit LegRole = "credit"
	RoleNone   LegRole = "none"
)

// Transaction is one row of the transaction log. Postings and transfers are
// separate concrete types, so a transfer can never carry a posted-account
// reference and no precedence rule between the two is needed.
type Transaction interface {
	TxnID() int
	TxnDate() time.Time
	TxnAmount() decimal.Decimal
	TxnKind() TransactionKind
	// Role reports how this transaction affects accountID.
	Role(accountID int) LegRole
}

// Posting is an ordinary transaction posted against at most one account.
// Amount is signed by caller convention: positive = inflow, negative = outflow.
type Posting struct {
	ID          int
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Kind        TransactionKind // inflow, outflow or investment
	AccountID   int             // 0 = unassigned to any account
	CategoryID  int             // 0 = uncategorized
}

func (p Posting) TxnID() int                 { return p.ID }
func (p Posting) TxnDate() time.Time         { return p.Date }
func (p Posting) TxnAmount() decimal.Decimal { return p.Amount }
func (p Posting) TxnKind() TransactionKind   { return p.Kind }

// Role returns posted if the posting is assigned to accountID, else none.
func (p Posting) Role(accountID int) LegRole {
	if p.AccountID != 0 && p.AccountID == accountID {
		return RolePosted
	}
	return RoleNone
}

// Transfer moves funds between two accounts as a single log row.
// The stored amount sign is not significant; both legs use the absolute value.
type Transfer struct {
	ID                   int
	Date                 time.Time
	Description          string
	Amount               decimal.Decimal
	SourceAccountID      int
	DestinationAccountID int
}

func (t Transfer) TxnID() int                 { return t.ID }
func (t Transfer) TxnDate() time.Time         { return t.Date }
func (t Transfer) TxnAmount() decimal.Decimal { return t.Amount }
func (t Transfer) TxnKind() TransactionKind   { return KindTransfer }

// Role returns debit for the source account, credit for the destination,
// none otherwise.
func (t Transfer) Role(accountID int) LegRole {
	if accountID == 0 {
		return RoleNone
	}
	switch accountID {
	case t.SourceAccountID:
		return RoleDebit
	case t.DestinationAccountID:
		return RoleCredit
	}
	return RoleNone
}
