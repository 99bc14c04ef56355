package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func TestService_Lookup(t *testing.T) {
	svc := NewService(DefaultCategories())

	assert.True(t, svc.Exists(1))
	assert.False(t, svc.Exists(99))

	cat, ok := svc.Get(4)
	require.True(t, ok)
	assert.Equal(t, "Groceries", cat.Name)
	assert.Equal(t, model.CategoryOutflow, cat.Kind)
}

func TestService_ByKind(t *testing.T) {
	svc := NewService(DefaultCategories())

	inflows := svc.ByKind(model.CategoryInflow)
	require.Len(t, inflows, 2)
	for _, c := range inflows {
		assert.Equal(t, model.CategoryInflow, c.Kind)
	}
}

func TestService_SaveLoad(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, NewService(DefaultCategories()).Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, loaded.All(), len(DefaultCategories()))

	cat, ok := loaded.Get(8)
	require.True(t, ok)
	assert.Equal(t, model.CategoryInvestment, cat.Kind)
}

func TestLoad_Missing(t *testing.T) {
	svc, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, svc.All())
}

func TestColorOverrides(t *testing.T) {
	dir := t.TempDir()

	overrides, err := LoadOverrides(dir)
	require.NoError(t, err)
	assert.Empty(t, overrides)

	overrides[4] = "#123456"
	require.NoError(t, SaveOverrides(dir, overrides))

	reloaded, err := LoadOverrides(dir)
	require.NoError(t, err)
	assert.Equal(t, "#123456", reloaded[4])

	groceries := model.Category{ID: 4, Name: "Groceries", Kind: model.CategoryOutflow, Color: "#ef6c00"}
	housing := model.Category{ID: 3, Name: "Housing", Kind: model.CategoryOutflow, Color: "#c62828"}
	assert.Equal(t, "#123456", reloaded.ColorFor(groceries), "override wins")
	assert.Equal(t, "#c62828", reloaded.ColorFor(housing), "default when no override")
}
