package categories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tally-dev/tally/internal/model"
)

// fileName is the category list file under the data directory.
const fileName = "categories.csv"

// Service provides in-memory lookup over the category list.
type Service struct {
	categories []model.Category
	byID       map[int]model.Category
}

// NewService creates a Service from a slice of categories.
func NewService(categories []model.Category) *Service {
	byID := make(map[int]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &Service{categories: categories, byID: byID}
}

// Load reads categories.csv from a data directory and returns a Service.
// A missing file yields an empty Service.
func Load(dataDir string) (*Service, error) {
	f, err := os.Open(filepath.Join(dataDir, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening categories: %w", err)
	}
	defer f.Close()

	cats, err := ReadCategories(f)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return NewService(cats), nil
}

// All returns all categories.
func (s *Service) All() []model.Category {
	return s.categories
}

// Get returns a category by ID.
func (s *Service) Get(id int) (model.Category, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Exists reports whether a category ID exists.
func (s *Service) Exists(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// ByKind returns all categories of the given kind. Kind is an explicit
// attribute of the record; it is never inferred from id ranges.
func (s *Service) ByKind(kind model.CategoryKind) []model.Category {
	var result []model.Category
	for _, c := range s.categories {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}

// Save writes the category list to <dataDir>/categories.csv.
func (s *Service) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dataDir, fileName))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer f.Close()

	if err := WriteCategories(f, s.categories); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

// DefaultCategories returns the category set created by init.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Salary", Kind: model.CategoryInflow, Color: "#2e7d32"},
		{ID: 2, Name: "Other Income", Kind: model.CategoryInflow, Color: "#66bb6a"},
		{ID: 3, Name: "Housing", Kind: model.CategoryOutflow, Color: "#c62828"},
		{ID: 4, Name: "Groceries", Kind: model.CategoryOutflow, Color: "#ef6c00"},
		{ID: 5, Name: "Transport", Kind: model.CategoryOutflow, Color: "#f9a825"},
		{ID: 6, Name: "Leisure", Kind: model.CategoryOutflow, Color: "#6a1b9a"},
		{ID: 7, Name: "Health", Kind: model.CategoryOutflow, Color: "#00838f"},
		{ID: 8, Name: "Stocks", Kind: model.CategoryInvestment, Color: "#1565c0"},
		{ID: 9, Name: "Savings Deposit", Kind: model.CategoryInvestment, Color: "#283593"},
	}
}
