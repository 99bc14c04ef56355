package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "transaction_id,date,kind,description,amount,account_id,source_account_id,destination_account_id,category_id"

const (
	numFields   = 9
	dateFormat  = "2006-01-02"
	colID       = 0
	colDate     = 1
	colKind     = 2
	colDesc     = 3
	colAmount   = 4
	colAcctID   = 5
	colSrcID    = 6
	colDstID    = 7
	colCategory = 8
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends transactions to an existing transactions.csv
// writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(txn.TxnID())
	row[colDate] = txn.TxnDate().Format(dateFormat)
	row[colKind] = string(txn.TxnKind())
	row[colAmount] = txn.TxnAmount().StringFixed(2)

	switch t := txn.(type) {
	case model.Posting:
		row[colDesc] = t.Description
		if t.AccountID != 0 {
			row[colAcctID] = strconv.Itoa(t.AccountID)
		}
		if t.CategoryID != 0 {
			row[colCategory] = strconv.Itoa(t.CategoryID)
		}
	case model.Transfer:
		row[colDesc] = t.Description
		row[colSrcID] = strconv.Itoa(t.SourceAccountID)
		row[colDstID] = strconv.Itoa(t.DestinationAccountID)
	}
	return row
}

// UnmarshalTransaction converts a CSV row to a Posting or a Transfer.
// Transfer rows must reference two distinct accounts.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	txnID, err := strconv.Atoi(record[colID])
	if err != nil {
		return nil, fmt.Errorf("parsing transaction_id %q: %w", record[colID], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	kind := model.TransactionKind(record[colKind])
	switch kind {
	case model.KindTransfer:
		transfer, err := unmarshalTransfer(record, txnID, date, amount)
		if err != nil {
			return nil, err
		}
		return transfer, nil
	case model.KindInflow, model.KindOutflow, model.KindInvestment:
		posting, err := unmarshalPosting(record, txnID, date, amount, kind)
		if err != nil {
			return nil, err
		}
		return posting, nil
	}
	return nil, fmt.Errorf("unknown kind %q", record[colKind])
}

func unmarshalPosting(record []string, txnID int, date time.Time, amount decimal.Decimal, kind model.TransactionKind) (model.Posting, error) {
	var accountID, categoryID int
	var err error

	if record[colAcctID] != "" {
		accountID, err = strconv.Atoi(record[colAcctID])
		if err != nil {
			return model.Posting{}, fmt.Errorf("parsing account_id %q: %w", record[colAcctID], err)
		}
	}
	if record[colCategory] != "" {
		categoryID, err = strconv.Atoi(record[colCategory])
		if err != nil {
			return model.Posting{}, fmt.Errorf("parsing category_id %q: %w", record[colCategory], err)
		}
	}

	return model.Posting{
		ID:          txnID,
		Date:        date,
		Description: record[colDesc],
		Amount:      amount,
		Kind:        kind,
		AccountID:   accountID,
		CategoryID:  categoryID,
	}, nil
}

func unmarshalTransfer(record []string, txnID int, date time.Time, amount decimal.Decimal) (model.Transfer, error) {
	if record[colSrcID] == "" || record[colDstID] == "" {
		return model.Transfer{}, model.ValidationError{
			Field:       "transfer",
			Description: "must reference both a source and a destination account",
		}
	}

	srcID, err := strconv.Atoi(record[colSrcID])
	if err != nil {
		return model.Transfer{}, fmt.Errorf("parsing source_account_id %q: %w", record[colSrcID], err)
	}
	dstID, err := strconv.Atoi(record[colDstID])
	if err != nil {
		return model.Transfer{}, fmt.Errorf("parsing destination_account_id %q: %w", record[colDstID], err)
	}

	if srcID == dstID {
		return model.Transfer{}, model.ValidationError{
			Field:       "transfer",
			Description: fmt.Sprintf("source and destination are both account %d", srcID),
		}
	}

	return model.Transfer{
		ID:                   txnID,
		Date:                 date,
		Description:          record[colDesc],
		Amount:               amount,
		SourceAccountID:      srcID,
		DestinationAccountID: dstID,
	}, nil
}
