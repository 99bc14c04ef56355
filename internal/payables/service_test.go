package payables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AddAndList(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	plans, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, plans)

	plan, err := svc.Add("New laptop", dec("1000"), 3, date(2025, 7, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, plan.ID)

	second, err := svc.Add("Dentist", dec("600"), 2, date(2025, 8, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	plans, err = svc.List()
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.True(t, plans[0].InstallmentAmount.Equal(dec("333.33")))
}

func TestService_Add_Validation(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.Add("Bad", dec("-5"), 2, date(2025, 7, 1))
	require.Error(t, err)

	// Nothing was persisted.
	plans, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestService_SettleOne_Persists(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	plan, err := svc.Add("Sofa", dec("900"), 3, date(2025, 7, 1))
	require.NoError(t, err)

	settled, err := svc.SettleOne(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, settled.CurrentInstallment)

	// A second Service over the same dir sees the new state.
	reloaded, err := NewService(dir).Get(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.CurrentInstallment)
	assert.False(t, reloaded.IsSettled)

	_, err = svc.SettleOne(99)
	require.Error(t, err)
}

func TestService_SettleOne_Idempotent(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	plan, err := svc.Add("One-off", dec("50"), 1, date(2025, 7, 1))
	require.NoError(t, err)

	settled, err := svc.SettleOne(plan.ID)
	require.NoError(t, err)
	assert.True(t, settled.IsSettled)

	again, err := svc.SettleOne(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, settled.CurrentInstallment, again.CurrentInstallment)
	assert.True(t, again.IsSettled)
}

func TestService_Update_RecomputesAmount(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	plan, err := svc.Add("Phone", dec("1200"), 4, date(2025, 7, 1))
	require.NoError(t, err)

	updated, err := svc.Update(plan.ID, dec("1000"), 3)
	require.NoError(t, err)
	assert.True(t, updated.InstallmentAmount.Equal(dec("333.33")))

	reloaded, err := NewService(dir).Get(plan.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.InstallmentAmount.Equal(dec("333.33")))

	// Invalid edits never persist a stale amount.
	_, err = svc.Update(plan.ID, dec("0"), 3)
	require.Error(t, err)
	reloaded, err = svc.Get(plan.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.TotalAmount.Equal(dec("1000")))
}

func TestService_Remove(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	plan, err := svc.Add("Gone", dec("100"), 2, date(2025, 7, 1))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(plan.ID))

	plans, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, plans)

	assert.Error(t, svc.Remove(plan.ID))
}
