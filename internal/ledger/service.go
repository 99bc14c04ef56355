package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// fileName is the transaction log file under the data directory.
const fileName = "transactions.csv"

// Service provides read and append access to the transaction log.
type Service struct {
	dataDir string
}

// NewService creates a ledger Service rooted at dataDir.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// List reads the full transaction log. A missing file is an empty log.
func (s *Service) List() ([]model.Transaction, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening transaction log: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading transaction log: %w", err)
	}
	return txns, nil
}

// NextID returns the next free transaction id.
func (s *Service) NextID() (int, error) {
	txns, err := s.List()
	if err != nil {
		return 0, err
	}
	ids := make([]int, len(txns))
	for i, txn := range txns {
		ids[i] = txn.TxnID()
	}
	return id.Next(ids), nil
}

// Append adds transactions to the end of the log, creating the file and
// header if needed.
func (s *Service) Append(txns []model.Transaction) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path()); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening transaction log: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, txns); err != nil {
		return fmt.Errorf("appending transactions: %w", err)
	}
	return nil
}

// Replace swaps the transaction with the same id for txn and rewrites the
// log. Stored transactions are immutable facts; this is the only mutation.
func (s *Service) Replace(txn model.Transaction) error {
	txns, err := s.List()
	if err != nil {
		return err
	}

	found := false
	for i, existing := range txns {
		if existing.TxnID() == txn.TxnID() {
			txns[i] = txn
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("transaction %d not found", txn.TxnID())
	}

	return s.writeAll(txns)
}

// Remove deletes the transaction with the given id and rewrites the log.
func (s *Service) Remove(txnID int) error {
	txns, err := s.List()
	if err != nil {
		return err
	}

	kept := txns[:0]
	for _, txn := range txns {
		if txn.TxnID() != txnID {
			kept = append(kept, txn)
		}
	}
	if len(kept) == len(txns) {
		return fmt.Errorf("transaction %d not found", txnID)
	}

	return s.writeAll(kept)
}

func (s *Service) writeAll(txns []model.Transaction) error {
	f, err := os.Create(s.path())
	if err != nil {
		return fmt.Errorf("rewriting transaction log: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing transaction log: %w", err)
	}
	return nil
}

func (s *Service) path() string {
	return filepath.Join(s.dataDir, fileName)
}
