package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/ports"
	portsmocks "github.com/timeclock/kiosk/internal/ports/mocks"
	"github.com/timeclock/kiosk/internal/services"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

type testKiosk struct {
	fetcher  *portsmocks.MockRosterFetcher
	model    *Model
	recorder *portsmocks.MockAttendanceRecorder
}

func newTestKiosk(t *testing.T, mode domain.IdentityMode) *testKiosk {
	t.Helper()
	fetcher := portsmocks.NewMockRosterFetcher(t)
	recorder := portsmocks.NewMockAttendanceRecorder(t)
	store := services.NewRosterStore(fetcher, services.FallbackRetain, nil)
	controller := services.NewAttendanceController(
		store,
		services.NewIdentityResolver(mode, store),
		recorder,
		nil,
		fixedClock{now: testNow},
	)
	model := NewModel(ModelConfig{
		Clock:      fixedClock{now: testNow},
		Controller: controller,
		Location:   time.UTC,
	})
	model.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return &testKiosk{fetcher: fetcher, model: model, recorder: recorder}
}

func directoryEmployees() []ports.DirectoryEmployee {
	return []ports.DirectoryEmployee{
		{ID: "1", Name: "Ana", PinCode: "1234"},
		{ID: "2", Name: "Bo", PinCode: "4321", Status: "ON_DUTY", TimesheetID: "T9"},
	}
}

// run executes cmd and feeds every produced message back into the model,
// following the commands those produce. Spinner ticks are dropped.
func (k *testKiosk) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			k.run(c)
		}
	case spinner.TickMsg:
	default:
		_, next := k.model.Update(msg)
		k.run(next)
	}
}

func (k *testKiosk) press(keys ...tea.KeyMsg) {
	for _, keyMsg := range keys {
		_, cmd := k.model.Update(keyMsg)
		k.run(cmd)
	}
}

func (k *testKiosk) loadRoster(t *testing.T) {
	t.Helper()
	k.fetcher.EXPECT().GetEmployees(mock.Anything).Return(directoryEmployees(), nil).Once()
	k.run(k.model.refreshRoster())
	require.Equal(t, 2, k.model.rosterList.Len())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestModel_SelectModeClockInAndOut(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)
	k.loadRoster(t)

	k.recorder.EXPECT().ClockIn(mock.Anything, ports.ClockInRequest{
		EmployeeID:   "1",
		EmployeeName: "Ana",
		Timestamp:    testNow,
	}).Return("T1", nil).Once()
	k.recorder.EXPECT().ClockOut(mock.Anything, ports.TimesheetRequest{TimesheetID: "T1", Timestamp: testNow}).
		Return(nil).Once()

	k.press(enterKey)
	employee, ok := k.model.controller.Identified()
	require.True(t, ok)
	assert.Equal(t, "Ana", employee.Name)
	assert.Contains(t, k.model.View(), "Clock In")

	k.press(runes("i"))
	employee, _ = k.model.controller.Identified()
	assert.Equal(t, domain.StatusOnDuty, employee.Status)
	assert.Equal(t, "T1", employee.ActiveTimesheetID)
	assert.Contains(t, k.model.View(), "Successfully clocked in!")

	k.press(runes("o"))
	_, ok = k.model.controller.Identified()
	assert.False(t, ok, "clock out returns to the start screen")
	assert.Contains(t, k.model.View(), "Successfully clocked out!")
	assert.Contains(t, k.model.View(), "Who are you?")
}

func TestModel_SelectModeNavigatesList(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)
	k.loadRoster(t)

	k.press(downKey, enterKey)

	employee, ok := k.model.controller.Identified()
	require.True(t, ok)
	assert.Equal(t, "Bo", employee.Name)

	k.press(escKey)
	_, ok = k.model.controller.Identified()
	assert.False(t, ok)
	assert.Equal(t, "2", k.model.rosterList.SelectedID(), "cursor stays on the last employee")
}

func TestModel_UnavailableActionIsIgnored(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)
	k.loadRoster(t)

	k.press(enterKey, runes("o"), runes("b"), runes("e"))

	employee, ok := k.model.controller.Identified()
	require.True(t, ok)
	assert.Equal(t, domain.StatusOffDuty, employee.Status)
	assert.True(t, k.model.controller.Message().IsZero())
}

func TestModel_PinMode(t *testing.T) {
	t.Run("wrong PIN shows a message and never echoes digits", func(t *testing.T) {
		k := newTestKiosk(t, domain.IdentityModePin)
		k.loadRoster(t)

		k.press(runes("9"), runes("8"), runes("7"), runes("6"), enterKey)

		_, ok := k.model.controller.Identified()
		assert.False(t, ok)
		message := k.model.controller.Message()
		assert.Equal(t, domain.MessageError, message.Kind)
		assert.Equal(t, "Wrong PIN, please try again", message.Text)
		assert.NotContains(t, k.model.View(), "9876")
		assert.Empty(t, k.model.controller.PinValue())
	})

	t.Run("matching PIN identifies the employee", func(t *testing.T) {
		k := newTestKiosk(t, domain.IdentityModePin)
		k.loadRoster(t)

		k.press(runes("4"), runes("3"), runes("2"), runes("9"), tea.KeyMsg{Type: tea.KeyBackspace}, runes("1"), enterKey)

		employee, ok := k.model.controller.Identified()
		require.True(t, ok)
		assert.Equal(t, "Bo", employee.Name)
		assert.Contains(t, k.model.View(), "Start Break")
	})

	t.Run("letters and clear", func(t *testing.T) {
		k := newTestKiosk(t, domain.IdentityModePin)

		k.press(runes("1"), runes("x"), runes("2"))
		assert.Equal(t, "12", k.model.controller.PinValue())

		k.press(escKey)
		assert.Empty(t, k.model.controller.PinValue())
	})
}

func TestModel_PendingActionBlocksInput(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)
	k.loadRoster(t)
	k.press(downKey, enterKey)

	_, cmd := k.model.Update(StartActionMsg{Kind: domain.ActionStartBreak})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.ActionStartBreak, k.model.controller.Pending())
	assert.Contains(t, k.model.View(), "Start Break...")

	// Neither cancel nor a second action nor a refresh get through
	k.press(escKey, runes("o"))
	_, again := k.model.Update(RefreshRosterMsg{})
	assert.Nil(t, again)
	_, ok := k.model.controller.Identified()
	assert.True(t, ok)

	k.recorder.EXPECT().StartBreak(mock.Anything, ports.TimesheetRequest{TimesheetID: "T9", Timestamp: testNow}).
		Return(errors.New("HTTP 503")).Once()
	k.run(cmd)

	employee, _ := k.model.controller.Identified()
	assert.Equal(t, domain.StatusOnDuty, employee.Status, "failed action leaves status unchanged")
	assert.Equal(t, "Failed to start break: HTTP 503", k.model.controller.Message().Text)
	assert.Empty(t, k.model.controller.Pending())
}

func TestModel_ResultAppliedWhileHelpIsOpen(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)
	k.loadRoster(t)
	k.press(enterKey)

	_, cmd := k.model.Update(StartActionMsg{Kind: domain.ActionClockIn})
	require.NotNil(t, cmd)

	k.press(runes("?"))
	require.Equal(t, stateHelp, k.model.state)
	assert.Contains(t, k.model.View(), "Keyboard Shortcuts")

	k.recorder.EXPECT().ClockIn(mock.Anything, mock.Anything).Return("T1", nil).Once()
	k.run(cmd)

	employee, _ := k.model.controller.Identified()
	assert.Equal(t, domain.StatusOnDuty, employee.Status)

	k.press(escKey)
	assert.Equal(t, stateKiosk, k.model.state)
	assert.Contains(t, k.model.View(), "Successfully clocked in!")
}

func TestModel_RosterLoadFailure(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)
	k.fetcher.EXPECT().GetEmployees(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	k.run(k.model.refreshRoster())

	assert.False(t, k.model.controller.Refreshing())
	assert.Equal(t, "Could not load employees, list is empty", k.model.controller.Message().Text)
	assert.Contains(t, k.model.View(), "No employees available")
}

func TestModel_DismissMessage(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModePin)
	k.loadRoster(t)

	k.press(runes("0"), runes("0"), runes("0"), runes("0"), enterKey)
	first := k.model.controller.Message()
	require.False(t, first.IsZero())

	k.press(runes("0"), runes("0"), runes("0"), runes("0"), enterKey)
	second := k.model.controller.Message()
	require.NotEqual(t, first.Token, second.Token)

	k.model.Update(dismissMessageMsg{token: first.Token})
	assert.Equal(t, second, k.model.controller.Message(), "stale dismissal keeps the newer message")

	k.model.Update(dismissMessageMsg{token: second.Token})
	assert.True(t, k.model.controller.Message().IsZero())
}

func TestModel_ClockTickUsesLocation(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)
	k.model.location = oslo

	k.model.Update(clockTickMsg(testNow))

	assert.Equal(t, "10:30:00", k.model.now.Format("15:04:05"))
	assert.Contains(t, k.model.View(), "10:30:00")
}

func TestModel_QuitKeys(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)

	_, cmd := k.model.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.Equal(t, QuitMsg{}, cmd())

	_, cmd = k.model.Update(QuitMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_ContextIsPassedToDirectory(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	k.model.ctx = ctx

	k.fetcher.EXPECT().GetEmployees(ctx).Return(nil, ctx.Err()).Once()
	k.run(k.model.refreshRoster())

	assert.Equal(t, 0, k.model.rosterList.Len())
}

func TestModel_LoadingView(t *testing.T) {
	k := newTestKiosk(t, domain.IdentityModeSelect)

	cmd := k.model.refreshRoster()
	require.NotNil(t, cmd)
	assert.True(t, k.model.controller.Refreshing())
	assert.Contains(t, k.model.View(), "Loading employees...")

	_, again := k.model.Update(RefreshRosterMsg{})
	assert.Nil(t, again, "a second refresh is rejected while one runs")

	k.fetcher.EXPECT().GetEmployees(mock.Anything).Return(directoryEmployees(), nil).Once()
	k.run(cmd)

	assert.False(t, k.model.controller.Refreshing())
	assert.Contains(t, k.model.View(), "Who are you?")
	assert.Contains(t, k.model.View(), "Ana")
}
