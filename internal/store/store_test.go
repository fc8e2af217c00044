package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/worthit/internal/afford"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_GetSetDelete(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get(KeySalaryType)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeySalaryType, "monthly"))
	require.NoError(t, s.Set(KeySalaryType, "annual"))
	raw, ok, err := s.Get(KeySalaryType)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"annual"`, raw)

	require.NoError(t, s.Set(KeyWorkDaysPerWeek, 4))
	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeySalaryType, KeyWorkDaysPerWeek}, keys)

	require.NoError(t, s.Delete(KeySalaryType))
	require.NoError(t, s.Delete("missing"))
	_, ok, err = s.Get(KeySalaryType)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LoadPreferencesDefaults(t *testing.T) {
	s := openTestStore(t)

	p, err := s.LoadPreferences(DefaultPreferences())

	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), p)
	assert.Equal(t, afford.Schedule{WorkDaysPerWeek: 5, WorkHoursPerDay: 8}, p.Schedule())
}

func TestStore_SaveAndLoadPreferences(t *testing.T) {
	s := openTestStore(t)

	want := Preferences{SalaryPeriod: afford.Monthly, WorkDaysPerWeek: 4, WorkHoursPerDay: 10}
	require.NoError(t, s.SavePreferences(want))

	got, err := s.LoadPreferences(DefaultPreferences())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, _, err := s.Get(KeyWorkHoursPerDay)
	require.NoError(t, err)
	assert.Equal(t, "10", raw)
}

func TestStore_SavePreferencesRejectsOutOfRange(t *testing.T) {
	s := openTestStore(t)

	err := s.SavePreferences(Preferences{SalaryPeriod: afford.Annual, WorkDaysPerWeek: 0, WorkHoursPerDay: 8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "work days per week")

	err = s.SavePreferences(Preferences{SalaryPeriod: afford.Annual, WorkDaysPerWeek: 5, WorkHoursPerDay: 17})
	require.Error(t, err)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys, "a rejected save must not write anything")
}

func TestStore_LoadPreferencesIgnoresBadValues(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set(KeySalaryType, "fortnightly"))
	require.NoError(t, s.Set(KeyWorkDaysPerWeek, 12))
	require.NoError(t, s.Set(KeyWorkHoursPerDay, "eight"))

	p, err := s.LoadPreferences(DefaultPreferences())

	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestStore_Reset(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SavePreferences(Preferences{SalaryPeriod: afford.Monthly, WorkDaysPerWeek: 6, WorkHoursPerDay: 6}))

	require.NoError(t, s.Reset())

	p, err := s.LoadPreferences(DefaultPreferences())
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyWorkDaysPerWeek, 3))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	p, err := s.LoadPreferences(DefaultPreferences())
	require.NoError(t, err)
	assert.Equal(t, 3, p.WorkDaysPerWeek)
}
