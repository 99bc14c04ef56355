package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// CurrentBalance derives an account's balance from its opening balance and
// the full transaction log. Postings apply their signed amount; transfer
// legs apply the absolute amount (debit out of the source, credit into the
// destination) regardless of the stored sign. Transactions that do not
// touch the account contribute nothing, so an unknown account yields its
// opening balance. Never fails.
func CurrentBalance(accountID int, openingBalance decimal.Decimal, txns []model.Transaction) decimal.Decimal {
	balance := openingBalance
	for _, txn := range txns {
		switch txn.Role(accountID) {
		case model.RolePosted:
			balance = balance.Add(txn.TxnAmount())
		case model.RoleDebit:
			balance = balance.Sub(txn.TxnAmount().Abs())
		case model.RoleCredit:
			balance = balance.Add(txn.TxnAmount().Abs())
		}
	}
	return balance
}

// ForAccount filters the log to transactions that touch accountID.
func ForAccount(accountID int, txns []model.Transaction) []model.Transaction {
	var relevant []model.Transaction
	for _, txn := range txns {
		if txn.Role(accountID) != model.RoleNone {
			relevant = append(relevant, txn)
		}
	}
	return relevant
}
