package accounts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// fileName is the account list file under the data directory.
const fileName = "accounts.csv"

// Service provides in-memory lookup over the account list.
type Service struct {
	accounts []model.Account
	byID     map[int]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[int]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads accounts.csv from a data directory and returns a Service.
// A missing file yields an empty Service.
func Load(dataDir string) (*Service, error) {
	f, err := os.Open(filepath.Join(dataDir, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Active returns accounts with IsActive set.
func (s *Service) Active() []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.IsActive {
			result = append(result, a)
		}
	}
	return result
}

// Get returns an account by ID.
func (s *Service) Get(id int) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// Add appends a new active account with the given opening balance and
// returns it.
func (s *Service) Add(name string, openingBalance decimal.Decimal) model.Account {
	ids := make([]int, len(s.accounts))
	for i, a := range s.accounts {
		ids[i] = a.ID
	}
	acct := model.Account{
		ID:             id.Next(ids),
		Name:           name,
		OpeningBalance: openingBalance,
		IsActive:       true,
	}
	s.accounts = append(s.accounts, acct)
	s.byID[acct.ID] = acct
	return acct
}

// Save writes the account list to <dataDir>/accounts.csv.
func (s *Service) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dataDir, fileName))
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}

// BalanceRow pairs an account with its derived current balance.
type BalanceRow struct {
	Account model.Account
	Balance decimal.Decimal
}

// BalanceReport derives the current balance of every account from the
// transaction log, in account-list order.
func (s *Service) BalanceReport(txns []model.Transaction) []BalanceRow {
	rows := make([]BalanceRow, len(s.accounts))
	for i, a := range s.accounts {
		rows[i] = BalanceRow{
			Account: a,
			Balance: ledger.CurrentBalance(a.ID, a.OpeningBalance, txns),
		}
	}
	return rows
}
