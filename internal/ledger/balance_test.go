package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tally-dev/tally/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCurrentBalance_NoTransactions(t *testing.T) {
	balance := CurrentBalance(1, dec("1234.56"), nil)
	assert.True(t, balance.Equal(dec("1234.56")))

	balance = CurrentBalance(1, dec("-50.00"), []model.Transaction{})
	assert.True(t, balance.Equal(dec("-50.00")))
}

func TestCurrentBalance_EndToEnd(t *testing.T) {
	// Opening 1000.00; posting -250.00; transfer 300.00 out; transfer
	// 150.00 in. Expect 1000 - 250 - 300 + 150 = 600.00.
	txns := []model.Transaction{
		model.Posting{ID: 1, Date: date(2025, 6, 1), Amount: dec("-250.00"), Kind: model.KindOutflow, AccountID: 1},
		model.Transfer{ID: 2, Date: date(2025, 6, 2), Amount: dec("300.00"), SourceAccountID: 1, DestinationAccountID: 2},
		model.Transfer{ID: 3, Date: date(2025, 6, 3), Amount: dec("150.00"), SourceAccountID: 2, DestinationAccountID: 1},
	}

	balance := CurrentBalance(1, dec("1000.00"), txns)
	assert.True(t, balance.Equal(dec("600.00")), "got %s", balance)
}

func TestCurrentBalance_TransferConservation(t *testing.T) {
	txns := []model.Transaction{
		model.Transfer{ID: 1, Date: date(2025, 3, 1), Amount: dec("75.50"), SourceAccountID: 1, DestinationAccountID: 2},
	}

	balanceA := CurrentBalance(1, dec("200.00"), txns)
	balanceB := CurrentBalance(2, dec("10.00"), txns)

	assert.True(t, balanceA.Equal(dec("124.50")))
	assert.True(t, balanceB.Equal(dec("85.50")))
}

func TestCurrentBalance_TransferSignIndependence(t *testing.T) {
	positive := []model.Transaction{
		model.Transfer{ID: 1, Date: date(2025, 3, 1), Amount: dec("75.50"), SourceAccountID: 1, DestinationAccountID: 2},
	}
	negative := []model.Transaction{
		model.Transfer{ID: 1, Date: date(2025, 3, 1), Amount: dec("-75.50"), SourceAccountID: 1, DestinationAccountID: 2},
	}

	for accountID, opening := range map[int]string{1: "200.00", 2: "10.00"} {
		fromPositive := CurrentBalance(accountID, dec(opening), positive)
		fromNegative := CurrentBalance(accountID, dec(opening), negative)
		assert.True(t, fromPositive.Equal(fromNegative), "account %d", accountID)
	}
}

func TestCurrentBalance_OrderIndependence(t *testing.T) {
	txns := []model.Transaction{
		model.Posting{ID: 1, Date: date(2025, 1, 5), Amount: dec("100.00"), Kind: model.KindInflow, AccountID: 1},
		model.Posting{ID: 2, Date: date(2025, 1, 3), Amount: dec("-40.00"), Kind: model.KindOutflow, AccountID: 1},
		model.Transfer{ID: 3, Date: date(2025, 1, 4), Amount: dec("25.00"), SourceAccountID: 1, DestinationAccountID: 2},
	}
	reversed := []model.Transaction{txns[2], txns[1], txns[0]}

	assert.True(t, CurrentBalance(1, dec("0"), txns).Equal(CurrentBalance(1, dec("0"), reversed)))
}

func TestCurrentBalance_UnknownAccount(t *testing.T) {
	txns := []model.Transaction{
		model.Posting{ID: 1, Date: date(2025, 1, 1), Amount: dec("100.00"), Kind: model.KindInflow, AccountID: 1},
		model.Transfer{ID: 2, Date: date(2025, 1, 2), Amount: dec("50.00"), SourceAccountID: 1, DestinationAccountID: 2},
	}

	// Account 99 appears nowhere; it keeps its opening balance.
	balance := CurrentBalance(99, dec("42.00"), txns)
	assert.True(t, balance.Equal(dec("42.00")))
}

func TestCurrentBalance_UnassignedPosting(t *testing.T) {
	txns := []model.Transaction{
		model.Posting{ID: 1, Date: date(2025, 1, 1), Amount: dec("100.00"), Kind: model.KindInflow},
	}

	// A posting without an account contributes to nothing, including
	// the zero "account".
	assert.True(t, CurrentBalance(1, dec("10.00"), txns).Equal(dec("10.00")))
	assert.True(t, CurrentBalance(0, dec("10.00"), txns).Equal(dec("10.00")))
}

func TestRole(t *testing.T) {
	posting := model.Posting{ID: 1, Amount: dec("10.00"), Kind: model.KindInflow, AccountID: 3}
	assert.Equal(t, model.RolePosted, posting.Role(3))
	assert.Equal(t, model.RoleNone, posting.Role(4))

	transfer := model.Transfer{ID: 2, Amount: dec("10.00"), SourceAccountID: 1, DestinationAccountID: 2}
	assert.Equal(t, model.RoleDebit, transfer.Role(1))
	assert.Equal(t, model.RoleCredit, transfer.Role(2))
	assert.Equal(t, model.RoleNone, transfer.Role(3))
	assert.Equal(t, model.RoleNone, transfer.Role(0))
}

func TestForAccount(t *testing.T) {
	txns := []model.Transaction{
		model.Posting{ID: 1, Amount: dec("10.00"), Kind: model.KindInflow, AccountID: 1},
		model.Posting{ID: 2, Amount: dec("20.00"), Kind: model.KindInflow, AccountID: 2},
		model.Transfer{ID: 3, Amount: dec("5.00"), SourceAccountID: 2, DestinationAccountID: 1},
	}

	relevant := ForAccount(1, txns)
	assert.Len(t, relevant, 2)
	assert.Equal(t, 1, relevant[0].TxnID())
	assert.Equal(t, 3, relevant[1].TxnID())
}
