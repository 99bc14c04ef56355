package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

const sampleStatement = `date,description,amount,reference
2025-05-01,Salary May,4200.00,SAL-05
2025-05-03,Supermarket,-86.40,
2025-05-07,Refund,12.90,REF-1190
`

func TestGenericParser(t *testing.T) {
	lines, err := (&GenericParser{}).Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "Salary May", lines[0].Description)
	assert.True(t, lines[0].Amount.Equal(dec("4200.00")))
	assert.Equal(t, "SAL-05", lines[0].Reference)
	assert.True(t, lines[1].Amount.IsNegative())
}

func TestGenericParser_WithoutReferenceColumn(t *testing.T) {
	csv := "date,description,amount\n2025-05-01,Coffee,-4.50\n"
	lines, err := (&GenericParser{}).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Empty(t, lines[0].Reference)
}

func TestGenericParser_BadRow(t *testing.T) {
	csv := "date,description,amount\nnot-a-date,Coffee,-4.50\n"
	_, err := (&GenericParser{}).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestToPosting(t *testing.T) {
	outflow := ToPosting(model.StatementLine{Description: "Supermarket", Amount: dec("-86.40")}, 10, 1)
	assert.Equal(t, model.KindOutflow, outflow.Kind)
	assert.Equal(t, 10, outflow.ID)
	assert.Equal(t, 1, outflow.AccountID)
	assert.True(t, outflow.Amount.Equal(dec("-86.40")), "sign carries through")

	inflow := ToPosting(model.StatementLine{Description: "Salary", Amount: dec("4200.00")}, 11, 1)
	assert.Equal(t, model.KindInflow, inflow.Kind)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("generic"))
	assert.NotNil(t, r.Get("GENERIC"), "lookup is case-insensitive")
	assert.Nil(t, r.Get("unknown"))

	assert.Panics(t, func() { r.Register(&GenericParser{}) })
}

func TestScanAndMarkProcessed(t *testing.T) {
	dir := t.TempDir()

	// Empty when the import dir is missing.
	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)

	importPath := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "may.csv"), []byte(sampleStatement), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "notes.txt"), []byte("skip me"), 0o644))

	files, err = Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "may.csv", files[0].Name)

	require.NoError(t, MarkProcessed(dir, "may.csv"))

	files, err = Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = os.Stat(filepath.Join(dir, "import", "processed", "may.csv"))
	require.NoError(t, err)
}
