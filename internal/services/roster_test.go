package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/ports"
	portsmocks "github.com/timeclock/kiosk/internal/ports/mocks"
)

func boolPtr(b bool) *bool { return &b }

func TestRosterStore_LoadMapsDirectoryEntries(t *testing.T) {
	fetcher := portsmocks.NewMockRosterFetcher(t)
	fetcher.EXPECT().GetEmployees(mock.Anything).Return([]ports.DirectoryEmployee{
		{ID: "1", Name: "Ana", Status: "ON_DUTY", TimesheetID: "T1"},
		{ID: "2", Name: "Bo", Active: boolPtr(true), OnBreak: boolPtr(true), TimesheetID: "T2"},
		{ID: "3", Name: "Cy", Active: boolPtr(true), TimesheetID: "T3"},
		{ID: "4", Name: "Di"},
		{ID: "5", Name: "Ed", Status: "off_duty", TimesheetID: "stale"},
	}, nil)

	store := NewRosterStore(fetcher, FallbackRetain, nil)
	result := store.Load(context.Background())

	assert.Equal(t, OutcomeLoaded, result.Outcome)
	assert.Equal(t, 5, result.Count)
	require.NoError(t, result.Err)

	cases := map[string]struct {
		status    domain.Status
		timesheet string
	}{
		"1": {domain.StatusOnDuty, "T1"},
		"2": {domain.StatusOnBreak, "T2"},
		"3": {domain.StatusOnDuty, "T3"},
		"4": {domain.StatusOffDuty, ""},
		"5": {domain.StatusOffDuty, ""},
	}
	for id, want := range cases {
		e, ok := store.Get(id)
		require.True(t, ok, id)
		assert.Equal(t, want.status, e.Status, id)
		assert.Equal(t, want.timesheet, e.ActiveTimesheetID, id)
	}

	var names []string
	for _, e := range store.Employees() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Ana", "Bo", "Cy", "Di", "Ed"}, names)
}

func TestRosterStore_FallbackOutcomes(t *testing.T) {
	fetchErr := errors.New("connection refused")

	t.Run("retain with no prior roster is empty", func(t *testing.T) {
		fetcher := portsmocks.NewMockRosterFetcher(t)
		fetcher.EXPECT().GetEmployees(mock.Anything).Return(nil, fetchErr)

		store := NewRosterStore(fetcher, FallbackRetain, nil)
		result := store.Load(context.Background())

		assert.Equal(t, OutcomeEmpty, result.Outcome)
		assert.Equal(t, 0, store.Len())
		assert.ErrorIs(t, result.Err, domain.ErrRosterLoad)
	})

	t.Run("seed with no prior roster uses defaults", func(t *testing.T) {
		fetcher := portsmocks.NewMockRosterFetcher(t)
		fetcher.EXPECT().GetEmployees(mock.Anything).Return(nil, fetchErr)

		store := NewRosterStore(fetcher, FallbackSeed, nil)
		result := store.Load(context.Background())

		assert.Equal(t, OutcomeSeeded, result.Outcome)
		assert.Equal(t, len(DefaultSeedEmployees), store.Len())
		for _, e := range store.Employees() {
			assert.Equal(t, domain.StatusOffDuty, e.Status)
		}
	})

	t.Run("seed uses configured list", func(t *testing.T) {
		fetcher := portsmocks.NewMockRosterFetcher(t)
		fetcher.EXPECT().GetEmployees(mock.Anything).Return(nil, fetchErr)

		seed := []domain.Employee{{ID: "9", Name: "Solo", PinCode: "0000"}}
		store := NewRosterStore(fetcher, FallbackSeed, seed)
		result := store.Load(context.Background())

		assert.Equal(t, OutcomeSeeded, result.Outcome)
		e, ok := store.FindByPin("0000")
		require.True(t, ok)
		assert.Equal(t, "Solo", e.Name)
	})

	t.Run("failed refresh retains last good roster", func(t *testing.T) {
		fetcher := portsmocks.NewMockRosterFetcher(t)
		fetcher.EXPECT().GetEmployees(mock.Anything).
			Return([]ports.DirectoryEmployee{{ID: "1", Name: "Ana"}}, nil).Once()
		fetcher.EXPECT().GetEmployees(mock.Anything).Return(nil, fetchErr).Once()

		store := NewRosterStore(fetcher, FallbackSeed, nil)
		require.Equal(t, OutcomeLoaded, store.Load(context.Background()).Outcome)

		result := store.Load(context.Background())
		assert.Equal(t, OutcomeRetained, result.Outcome)
		assert.Equal(t, 1, result.Count)
		_, ok := store.Get("1")
		assert.True(t, ok)
	})
}

func TestRosterStore_ApplyStatusChange(t *testing.T) {
	store := NewRosterStore(nil, FallbackRetain, nil)
	store.Apply(domain.NewRoster([]domain.Employee{{ID: "1", Name: "Ana"}}), nil)

	changed, err := store.ApplyStatusChange("1", domain.StatusOnDuty, "T1")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = store.ApplyStatusChange("1", domain.StatusOnDuty, "T1")
	require.NoError(t, err)
	assert.False(t, changed, "applying the same change twice is a no-op")

	_, err = store.ApplyStatusChange("1", domain.StatusOnBreak, "")
	assert.ErrorIs(t, err, domain.ErrInvariant)
	e, _ := store.Get("1")
	assert.Equal(t, domain.StatusOnDuty, e.Status, "rejected change must not be applied")

	_, err = store.ApplyStatusChange("missing", domain.StatusOnDuty, "T9")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestParseRosterFallback(t *testing.T) {
	p, err := ParseRosterFallback("")
	require.NoError(t, err)
	assert.Equal(t, FallbackRetain, p)

	p, err = ParseRosterFallback("seed")
	require.NoError(t, err)
	assert.Equal(t, FallbackSeed, p)

	_, err = ParseRosterFallback("sometimes")
	assert.Error(t, err)
}
