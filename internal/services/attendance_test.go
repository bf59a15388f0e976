package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/ports"
	portsmocks "github.com/timeclock/kiosk/internal/ports/mocks"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, 3, 4, 9, 30, 0, 0, time.FixedZone("CET", 3600))

func pinEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "1", Name: "Ana", PinCode: "1234"},
		{ID: "2", Name: "Bo", PinCode: "4321"},
		{ID: "3", Name: "Cy", PinCode: "5555", Status: domain.StatusOnBreak, ActiveTimesheetID: "T7"},
	}
}

func newTestController(t *testing.T, mode domain.IdentityMode, employees ...domain.Employee) (*AttendanceController, *portsmocks.MockAttendanceRecorder) {
	t.Helper()
	store := newTestRoster(employees...)
	recorder := portsmocks.NewMockAttendanceRecorder(t)
	ctrl := NewAttendanceController(
		store,
		NewIdentityResolver(mode, store),
		recorder,
		nil,
		fixedClock{now: testNow},
	)
	return ctrl, recorder
}

func enterPin(t *testing.T, ctrl *AttendanceController, pin string) (bool, error) {
	t.Helper()
	for _, r := range pin {
		ctrl.PressPinDigit(r)
	}
	return ctrl.SubmitPin()
}

func requireInvariant(t *testing.T, ctrl *AttendanceController) {
	t.Helper()
	for _, e := range ctrl.Roster().Employees() {
		require.NoError(t, e.Validate(), e.ID)
	}
}

func TestAttendanceController_FullShiftInPinMode(t *testing.T) {
	ctrl, recorder := newTestController(t, domain.IdentityModePin, pinEmployees()...)
	ctx := context.Background()

	recorder.EXPECT().ClockIn(mock.Anything, ports.ClockInRequest{
		EmployeeID:   "2",
		EmployeeName: "Bo",
		Timestamp:    testNow.UTC(),
	}).Return("T1", nil).Once()
	recorder.EXPECT().StartBreak(mock.Anything, ports.TimesheetRequest{TimesheetID: "T1", Timestamp: testNow.UTC()}).Return(nil).Once()
	recorder.EXPECT().EndBreak(mock.Anything, ports.TimesheetRequest{TimesheetID: "T1", Timestamp: testNow.UTC()}).Return(nil).Once()
	recorder.EXPECT().ClockOut(mock.Anything, ports.TimesheetRequest{TimesheetID: "T1", Timestamp: testNow.UTC()}).Return(nil).Once()

	ok, err := enterPin(t, ctrl, "4321")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, ctrl.PinValue(), "pin entry is cleared after a match")

	msg, err := ctrl.Perform(ctx, domain.ActionClockIn)
	require.NoError(t, err)
	assert.Equal(t, "Successfully clocked in!", msg.Text)
	e, _ := ctrl.Identified()
	assert.Equal(t, domain.StatusOnDuty, e.Status)
	assert.Equal(t, "T1", e.ActiveTimesheetID)
	requireInvariant(t, ctrl)

	msg, err = ctrl.Perform(ctx, domain.ActionStartBreak)
	require.NoError(t, err)
	assert.Equal(t, "Break started!", msg.Text)
	e, _ = ctrl.Identified()
	assert.Equal(t, domain.StatusOnBreak, e.Status)
	requireInvariant(t, ctrl)

	msg, err = ctrl.Perform(ctx, domain.ActionEndBreak)
	require.NoError(t, err)
	assert.Equal(t, "Break ended!", msg.Text)
	requireInvariant(t, ctrl)

	msg, err = ctrl.Perform(ctx, domain.ActionClockOut)
	require.NoError(t, err)
	assert.Equal(t, "Successfully clocked out!", msg.Text)
	assert.Equal(t, domain.MessageSuccess, msg.Kind)

	_, identified := ctrl.Identified()
	assert.False(t, identified, "clock-out clears the identification")

	bo, _ := ctrl.Roster().Get("2")
	assert.Equal(t, domain.StatusOffDuty, bo.Status)
	assert.Empty(t, bo.ActiveTimesheetID)
	requireInvariant(t, ctrl)
}

func TestAttendanceController_SubmitPin(t *testing.T) {
	t.Run("short pin is ignored", func(t *testing.T) {
		ctrl, _ := newTestController(t, domain.IdentityModePin, pinEmployees()...)

		ok, err := enterPin(t, ctrl, "12")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "12", ctrl.PinValue(), "short entry is kept")
		assert.True(t, ctrl.Message().IsZero())
	})

	t.Run("three digits never reach the wrong pin path", func(t *testing.T) {
		ctrl, _ := newTestController(t, domain.IdentityModePin, pinEmployees()...)

		ok, err := enterPin(t, ctrl, "999")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "999", ctrl.PinValue())
		assert.True(t, ctrl.Message().IsZero())

		ctrl.PressPinDigit('9')
		_, err = ctrl.SubmitPin()
		assert.ErrorIs(t, err, domain.ErrWrongPin)
	})

	t.Run("wrong pin sets error and clears entry", func(t *testing.T) {
		ctrl, _ := newTestController(t, domain.IdentityModePin, pinEmployees()...)

		ok, err := enterPin(t, ctrl, "9999")
		assert.False(t, ok)
		assert.ErrorIs(t, err, domain.ErrWrongPin)
		assert.Empty(t, ctrl.PinValue())
		assert.Equal(t, domain.MessageError, ctrl.Message().Kind)
		_, identified := ctrl.Identified()
		assert.False(t, identified)
	})

	t.Run("matching pin identifies employee", func(t *testing.T) {
		ctrl, _ := newTestController(t, domain.IdentityModePin, pinEmployees()...)

		ok, err := enterPin(t, ctrl, "1234")
		require.NoError(t, err)
		assert.True(t, ok)
		e, identified := ctrl.Identified()
		require.True(t, identified)
		assert.Equal(t, "1", e.ID)
	})

	t.Run("input ignored while identified", func(t *testing.T) {
		ctrl, _ := newTestController(t, domain.IdentityModePin, pinEmployees()...)

		_, err := enterPin(t, ctrl, "1234")
		require.NoError(t, err)
		assert.False(t, ctrl.PressPinDigit('5'))
		assert.Empty(t, ctrl.PinValue())

		_, err = ctrl.SubmitPin()
		assert.ErrorIs(t, err, domain.ErrActionRejected)
	})

	t.Run("entry is capped at max length", func(t *testing.T) {
		ctrl, _ := newTestController(t, domain.IdentityModePin, pinEmployees()...)

		for _, r := range "12345678" {
			ctrl.PressPinDigit(r)
		}
		assert.Equal(t, "123456", ctrl.PinValue())
		ctrl.PinBackspace()
		assert.Equal(t, "12345", ctrl.PinValue())
		ctrl.PinClear()
		assert.Empty(t, ctrl.PinValue())
	})
}

func TestAttendanceController_SelectMode(t *testing.T) {
	ctrl, _ := newTestController(t, domain.IdentityModeSelect, pinEmployees()...)

	assert.False(t, ctrl.PressPinDigit('1'), "pin pad is inactive in select mode")

	require.NoError(t, ctrl.Select("3"))
	e, ok := ctrl.Identified()
	require.True(t, ok)
	assert.Equal(t, "Cy", e.Name)

	kinds := actionKinds(ctrl.AvailableActions())
	assert.Equal(t, []domain.ActionKind{domain.ActionEndBreak}, kinds)

	assert.ErrorIs(t, ctrl.Select("missing"), domain.ErrEmployeeNotFound)

	require.NoError(t, ctrl.Cancel())
	_, ok = ctrl.Identified()
	assert.False(t, ok)
	assert.Empty(t, ctrl.AvailableActions())
}

func TestAttendanceController_SelectRejectedInPinMode(t *testing.T) {
	ctrl, _ := newTestController(t, domain.IdentityModePin, pinEmployees()...)

	assert.ErrorIs(t, ctrl.Select("1"), domain.ErrActionRejected)
}

func TestAttendanceController_RejectsIllegalTransitions(t *testing.T) {
	tests := []struct {
		name     string
		employee domain.Employee
		action   domain.ActionKind
	}{
		{"clock in while on duty", domain.Employee{ID: "1", Name: "A", Status: domain.StatusOnDuty, ActiveTimesheetID: "T1"}, domain.ActionClockIn},
		{"clock in while on break", domain.Employee{ID: "1", Name: "A", Status: domain.StatusOnBreak, ActiveTimesheetID: "T1"}, domain.ActionClockIn},
		{"clock out while on break", domain.Employee{ID: "1", Name: "A", Status: domain.StatusOnBreak, ActiveTimesheetID: "T1"}, domain.ActionClockOut},
		{"clock out while off duty", domain.Employee{ID: "1", Name: "A"}, domain.ActionClockOut},
		{"start break while off duty", domain.Employee{ID: "1", Name: "A"}, domain.ActionStartBreak},
		{"end break while on duty", domain.Employee{ID: "1", Name: "A", Status: domain.StatusOnDuty, ActiveTimesheetID: "T1"}, domain.ActionEndBreak},
		{"start break without timesheet", domain.Employee{ID: "1", Name: "A", Status: domain.StatusOnDuty}, domain.ActionStartBreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The recorder mock has no expectations: any remote call fails the test
			ctrl, _ := newTestController(t, domain.IdentityModeSelect, tt.employee)
			require.NoError(t, ctrl.Select("1"))

			before, _ := ctrl.Identified()
			call, err := ctrl.Begin(tt.action)

			assert.Nil(t, call)
			assert.ErrorIs(t, err, domain.ErrActionRejected)
			assert.Empty(t, ctrl.Pending())
			after, _ := ctrl.Identified()
			assert.Equal(t, before, after)
		})
	}
}

func TestAttendanceController_BeginWithoutIdentification(t *testing.T) {
	ctrl, _ := newTestController(t, domain.IdentityModeSelect, pinEmployees()...)

	_, err := ctrl.Begin(domain.ActionClockIn)
	assert.ErrorIs(t, err, domain.ErrActionRejected)
}

func TestAttendanceController_SingleFlight(t *testing.T) {
	ctrl, recorder := newTestController(t, domain.IdentityModeSelect,
		domain.Employee{ID: "1", Name: "Ana", Status: domain.StatusOnDuty, ActiveTimesheetID: "T1"},
		domain.Employee{ID: "2", Name: "Bo"},
	)
	recorder.EXPECT().StartBreak(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, ctrl.Select("1"))

	call, err := ctrl.Begin(domain.ActionStartBreak)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionStartBreak, ctrl.Pending())
	assert.Empty(t, ctrl.AvailableActions(), "no actions offered while pending")

	_, err = ctrl.Begin(domain.ActionStartBreak)
	assert.ErrorIs(t, err, domain.ErrActionRejected, "second press while pending")
	assert.ErrorIs(t, ctrl.Cancel(), domain.ErrActionRejected)
	assert.ErrorIs(t, ctrl.Select("2"), domain.ErrActionRejected)
	assert.ErrorIs(t, ctrl.BeginRefresh(), domain.ErrActionRejected)

	msg := ctrl.Complete(call.Execute(context.Background()))
	assert.Equal(t, "Break started!", msg.Text)
	assert.Empty(t, ctrl.Pending())

	e, _ := ctrl.Identified()
	assert.Equal(t, domain.StatusOnBreak, e.Status)
	assert.Equal(t, "T1", e.ActiveTimesheetID)
}

func TestAttendanceController_RemoteFailureLeavesStatus(t *testing.T) {
	ctrl, recorder := newTestController(t, domain.IdentityModeSelect,
		domain.Employee{ID: "1", Name: "Ana", Status: domain.StatusOnDuty, ActiveTimesheetID: "T1"},
	)
	recorder.EXPECT().ClockOut(mock.Anything, mock.Anything).Return(errors.New("HTTP 503")).Once()

	require.NoError(t, ctrl.Select("1"))
	msg, err := ctrl.Perform(context.Background(), domain.ActionClockOut)

	assert.ErrorIs(t, err, domain.ErrRemoteAction)
	assert.Equal(t, domain.MessageError, msg.Kind)
	assert.Equal(t, "Failed to clock out: HTTP 503", msg.Text)

	e, ok := ctrl.Identified()
	require.True(t, ok, "failed clock-out keeps the employee identified")
	assert.Equal(t, domain.StatusOnDuty, e.Status)
	assert.Equal(t, "T1", e.ActiveTimesheetID)
	assert.Empty(t, ctrl.Pending())
}

func TestAttendanceController_ClockInWithoutTimesheetIDFails(t *testing.T) {
	ctrl, recorder := newTestController(t, domain.IdentityModeSelect, domain.Employee{ID: "1", Name: "Ana"})
	recorder.EXPECT().ClockIn(mock.Anything, mock.Anything).Return("", nil).Once()

	require.NoError(t, ctrl.Select("1"))
	msg, err := ctrl.Perform(context.Background(), domain.ActionClockIn)

	assert.ErrorIs(t, err, domain.ErrRemoteAction)
	assert.Equal(t, domain.MessageError, msg.Kind)
	e, _ := ctrl.Identified()
	assert.Equal(t, domain.StatusOffDuty, e.Status)
	requireInvariant(t, ctrl)
}

func TestAttendanceController_StaleResultIgnored(t *testing.T) {
	ctrl, _ := newTestController(t, domain.IdentityModeSelect, domain.Employee{ID: "1", Name: "Ana"})

	call := &ActionCall{Action: *domain.GetActionByKind(domain.ActionClockIn), EmployeeID: "1"}
	msg := ctrl.Complete(ActionResult{Call: call, TimesheetID: "T1"})

	assert.True(t, msg.IsZero())
	e, _ := ctrl.Roster().Get("1")
	assert.Equal(t, domain.StatusOffDuty, e.Status)
}

func TestAttendanceController_DismissMessage(t *testing.T) {
	ctrl, _ := newTestController(t, domain.IdentityModePin, pinEmployees()...)

	_, _ = enterPin(t, ctrl, "0000")
	first := ctrl.Message()
	_, _ = enterPin(t, ctrl, "0001")
	second := ctrl.Message()
	require.NotEqual(t, first.Token, second.Token)

	assert.False(t, ctrl.DismissMessage(first.Token), "stale timer must not clear a newer message")
	assert.Equal(t, second, ctrl.Message())

	assert.True(t, ctrl.DismissMessage(second.Token))
	assert.True(t, ctrl.Message().IsZero())
	assert.False(t, ctrl.DismissMessage(second.Token))
}

func TestAttendanceController_ApplyRoster(t *testing.T) {
	t.Run("identified employee removed by refresh", func(t *testing.T) {
		ctrl, _ := newTestController(t, domain.IdentityModeSelect, pinEmployees()...)
		require.NoError(t, ctrl.Select("2"))

		require.NoError(t, ctrl.BeginRefresh())
		_, err := ctrl.Begin(domain.ActionClockIn)
		assert.ErrorIs(t, err, domain.ErrActionRejected, "actions wait for the refresh")

		result := ctrl.ApplyRoster(domain.NewRoster([]domain.Employee{{ID: "1", Name: "Ana"}}), nil)

		assert.Equal(t, OutcomeLoaded, result.Outcome)
		_, ok := ctrl.Identified()
		assert.False(t, ok)
		assert.True(t, ctrl.Message().IsZero())
	})

	t.Run("failed refresh keeps roster and reports", func(t *testing.T) {
		ctrl, _ := newTestController(t, domain.IdentityModeSelect, pinEmployees()...)
		require.NoError(t, ctrl.Select("2"))

		require.NoError(t, ctrl.BeginRefresh())
		result := ctrl.ApplyRoster(nil, errors.New("timeout"))

		assert.Equal(t, OutcomeRetained, result.Outcome)
		e, ok := ctrl.Identified()
		require.True(t, ok)
		assert.Equal(t, "Bo", e.Name)
		assert.Equal(t, domain.MessageError, ctrl.Message().Kind)
	})
}

func TestActionCall_JournalsOutcome(t *testing.T) {
	store := newTestRoster(domain.Employee{ID: "1", Name: "Ana"})
	recorder := portsmocks.NewMockAttendanceRecorder(t)
	journal := portsmocks.NewMockPunchWriter(t)
	ctrl := NewAttendanceController(store, NewIdentityResolver(domain.IdentityModeSelect, store), recorder, journal, fixedClock{now: testNow})

	recorder.EXPECT().ClockIn(mock.Anything, mock.Anything).Return("T42", nil).Once()
	journal.EXPECT().Record(mock.Anything, mock.MatchedBy(func(p domain.Punch) bool {
		return p.Action == domain.ActionClockIn &&
			p.EmployeeID == "1" &&
			p.Outcome == domain.PunchSucceeded &&
			p.TimesheetID == "T42" &&
			p.SubmittedAt.Equal(testNow) &&
			p.ID != ""
	})).Return(errors.New("disk full")).Once()

	require.NoError(t, ctrl.Select("1"))
	msg, err := ctrl.Perform(context.Background(), domain.ActionClockIn)

	require.NoError(t, err, "journal failures do not fail the action")
	assert.Equal(t, domain.MessageSuccess, msg.Kind)
}

func actionKinds(actions []domain.Action) []domain.ActionKind {
	var kinds []domain.ActionKind
	for _, a := range actions {
		kinds = append(kinds, a.Kind)
	}
	return kinds
}
