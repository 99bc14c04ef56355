package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	first := New(ActionSettle, "Sofa", 1)
	require.NotEmpty(t, first.ID)
	require.NoError(t, Append(dir, []Entry{first}))

	second := New(ActionGoalUpdate, "Emergency fund", 2)
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err = Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, ActionSettle, entries[0].Action)
	assert.Equal(t, 1, entries[0].RecordID)
	assert.Equal(t, ActionGoalUpdate, entries[1].Action)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestEntryRoundTrip(t *testing.T) {
	e := New(ActionImport, "statement.csv: 12 transactions", 0)

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, e.Details, got.Details)
	assert.Equal(t, 0, got.RecordID)
	assert.True(t, e.Timestamp.Equal(got.Timestamp))
}
