package categories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/tally-dev/tally/internal/model"
)

// colorsFileName holds the user's category color overrides.
const colorsFileName = "category-colors.csv"

// Overrides maps category ids to user-chosen display colors. Loaded once at
// session start, persisted on every edit.
type Overrides map[int]string

// LoadOverrides reads category-colors.csv from a data directory. A missing
// file yields an empty map.
func LoadOverrides(dataDir string) (Overrides, error) {
	f, err := os.Open(filepath.Join(dataDir, colorsFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Overrides{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening category colors: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = 2

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading category colors: %w", err)
	}

	overrides := Overrides{}
	if len(records) == 0 {
		return overrides, nil
	}
	for i, rec := range records[1:] {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing category_id %q: %w", i+2, rec[0], err)
		}
		overrides[id] = rec[1]
	}
	return overrides, nil
}

// SaveOverrides writes the override map to <dataDir>/category-colors.csv,
// sorted by category id.
func SaveOverrides(dataDir string, overrides Overrides) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dataDir, colorsFileName))
	if err != nil {
		return fmt.Errorf("creating category colors file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write([]string{"category_id", "color"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	ids := make([]int, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if err := cw.Write([]string{strconv.Itoa(id), overrides[id]}); err != nil {
			return fmt.Errorf("writing category %d: %w", id, err)
		}
	}
	return cw.Error()
}

// ColorFor returns the override for the category if one is set, otherwise
// the category's default color.
func (o Overrides) ColorFor(cat model.Category) string {
	if color, ok := o[cat.ID]; ok {
		return color
	}
	return cat.Color
}
