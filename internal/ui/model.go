package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ports"
	"github.com/timeclock/kiosk/internal/services"
	"github.com/timeclock/kiosk/internal/theme"
)

type uiState int

const (
	stateKiosk uiState = iota
	stateHelp
)

// Layout: header (3) + title (2) + message (2) + help bar (2)
const listOverhead = 9

// ModelConfig holds the dependencies of the kiosk model
type ModelConfig struct {
	Clock           ports.Clock
	Context         context.Context // Cancels in-flight directory calls; defaults to Background
	Controller      *services.AttendanceController
	DevMode         bool
	KeysConfig      config.KeyBindingsConfig
	Location        *time.Location // Clock display time zone; defaults to Local
	MessageDuration time.Duration
}

// Model is the bubbletea model of one kiosk screen. It is a thin shell
// around the AttendanceController: every state change goes through the
// controller, and remote calls run as commands whose results come back
// as messages.
type Model struct {
	clock           ports.Clock
	controller      *services.AttendanceController
	ctx             context.Context
	devMode         bool
	height          int
	help            help.Model
	helpScreen      *Dialog // Help screen dialog
	keys            KeyMap
	location        *time.Location
	messageDuration time.Duration
	now             time.Time
	rosterList      *RosterList
	spinner         spinner.Model
	state           uiState
	width           int
}

// NewModel creates the kiosk model
func NewModel(cfg ModelConfig) *Model {
	clock := cfg.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	keys := NewKeyMap(cfg.KeysConfig)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	m := &Model{
		clock:           clock,
		controller:      cfg.Controller,
		ctx:             ctx,
		devMode:         cfg.DevMode,
		help:            help.New(),
		keys:            keys,
		location:        location,
		messageDuration: cfg.MessageDuration,
		rosterList:      NewRosterList(keys),
		spinner:         s,
		state:           stateKiosk,
	}
	m.now = clock.Now().In(location)
	m.rosterList.SetEmployees(cfg.Controller.Roster().Employees())
	return m
}

// Init loads the roster and starts the clock
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshRoster(), m.tickClock())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.updateBackground(msg); handled {
		return m, cmd
	}

	switch m.state {
	case stateHelp:
		return m.updateHelp(msg)
	default:
		return m.updateKiosk(msg)
	}
}

// updateBackground handles messages that must be processed whatever
// screen is showing: remote results keep arriving while help is open.
func (m *Model) updateBackground(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rosterList.SetSize(msg.Width, msg.Height-listOverhead)
		if m.helpScreen != nil {
			_, cmd := m.helpScreen.Update(msg)
			return cmd, true
		}
		return nil, true

	case actionResultMsg:
		cmd := m.withMessage(func() { m.controller.Complete(msg.result) })
		m.rosterList.SetEmployees(m.controller.Roster().Employees())
		return cmd, true

	case rosterLoadedMsg:
		cmd := m.withMessage(func() {
			result := m.controller.ApplyRoster(msg.roster, msg.err)
			logging.Logger.Info("Roster applied", "outcome", result.Outcome, "count", result.Count)
		})
		m.rosterList.SetEmployees(m.controller.Roster().Employees())
		return cmd, true

	case dismissMessageMsg:
		m.controller.DismissMessage(msg.token)
		return nil, true

	case clockTickMsg:
		m.now = m.clock.Now().In(m.location)
		return m.tickClock(), true

	case spinner.TickMsg:
		if !m.busy() {
			return nil, true
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd, true

	case QuitMsg:
		return tea.Quit, true

	case ShowHelpMsg:
		m.openHelp()
		return nil, true

	case RefreshRosterMsg:
		return m.refreshRoster(), true

	case StartActionMsg:
		return m.startAction(msg.Kind), true
	}

	return nil, false
}

func (m *Model) updateKiosk(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Application.Quit):
		return m, dispatch("quit")
	case key.Matches(keyMsg, m.keys.Application.Refresh):
		return m, dispatch("refresh")
	case key.Matches(keyMsg, m.keys.Application.Help):
		return m, dispatch("help")
	}

	if _, identified := m.controller.Identified(); identified {
		return m, m.handleAttendanceKey(keyMsg)
	}
	if m.controller.Mode() == domain.IdentityModePin {
		return m, m.handlePinKey(keyMsg)
	}
	return m, m.handleListKey(keyMsg)
}

// handleAttendanceKey maps action keys to StartActionMsg. Keys for
// actions that are not available are still dispatched; the controller
// rejects them.
func (m *Model) handleAttendanceKey(msg tea.KeyMsg) tea.Cmd {
	kinds := []domain.ActionKind{
		domain.ActionCancel,
		domain.ActionClockIn,
		domain.ActionClockOut,
		domain.ActionEndBreak,
		domain.ActionStartBreak,
	}
	for _, kind := range kinds {
		if binding, ok := m.keys.ActionBinding(kind); ok && key.Matches(msg, binding) {
			return func() tea.Msg { return StartActionMsg{Kind: kind} }
		}
	}
	return nil
}

func (m *Model) handlePinKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Pin.Submit):
		return m.withMessage(func() {
			if _, err := m.controller.SubmitPin(); err != nil && !errors.Is(err, domain.ErrWrongPin) {
				logging.Logger.Debug("PIN submit rejected", "error", err)
			}
		})
	case key.Matches(msg, m.keys.Pin.Backspace):
		m.controller.PinBackspace()
	case key.Matches(msg, m.keys.Pin.Clear):
		m.controller.PinClear()
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		m.controller.PressPinDigit(msg.Runes[0])
	}
	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Navigation.Select) {
		id := m.rosterList.SelectedID()
		if id == "" {
			return nil
		}
		if err := m.controller.Select(id); err != nil {
			logging.Logger.Debug("Selection rejected", "employee_id", id, "error", err)
		}
		return nil
	}
	return m.rosterList.Update(msg)
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Application.ForceQuit) {
		return m, tea.Quit
	}

	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateKiosk
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) openHelp() {
	screen := NewHelpScreen(&m.keys, m.controller.Mode())
	m.helpScreen = NewDialog("Keyboard Shortcuts", screen, m.devMode)
	m.helpScreen.Init()
	m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.state = stateHelp
}

// startAction dispatches an action through the controller. Remote actions
// run as a command; the result is applied when actionResultMsg arrives.
func (m *Model) startAction(kind domain.ActionKind) tea.Cmd {
	if kind == domain.ActionCancel {
		if err := m.controller.Cancel(); err != nil {
			logging.Logger.Debug("Cancel rejected", "error", err)
		}
		return nil
	}

	call, err := m.controller.Begin(kind)
	if err != nil {
		return nil
	}

	ctx := m.ctx
	execute := func() tea.Msg {
		return actionResultMsg{result: call.Execute(ctx)}
	}
	return tea.Batch(execute, m.spinner.Tick)
}

// refreshRoster fetches the roster off the event loop
func (m *Model) refreshRoster() tea.Cmd {
	if err := m.controller.BeginRefresh(); err != nil {
		return nil
	}

	store := m.controller.Roster()
	ctx := m.ctx
	fetch := func() tea.Msg {
		roster, err := store.Fetch(ctx)
		return rosterLoadedMsg{roster: roster, err: err}
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

func (m *Model) tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// withMessage runs fn and schedules the expiry of any message it set
func (m *Model) withMessage(fn func()) tea.Cmd {
	before := m.controller.Message().Token
	fn()
	if message := m.controller.Message(); message.Token != before {
		return dismissAfter(message, m.messageDuration)
	}
	return nil
}

func (m *Model) busy() bool {
	return m.controller.Refreshing() || m.controller.Pending() != ""
}

// dispatch returns a command emitting the message bound to a key definition
func dispatch(name string) tea.Cmd {
	def := GetKeyDefinition(name)
	if def == nil || def.Msg == nil {
		return nil
	}
	msg := def.Msg
	return func() tea.Msg { return msg }
}

func (m *Model) View() string {
	if m.state == stateHelp && m.helpScreen != nil {
		return m.helpScreen.View()
	}

	view := renderClockHeader(m.devMode, m.now, m.width) + "\n"

	employee, identified := m.controller.Identified()
	switch {
	case identified:
		view += renderEmployeePanel(employee, m.controller.AvailableActions(), m.controller.Pending(), m.spinner, m.keys)
	case m.controller.Mode() == domain.IdentityModePin:
		view += renderPinPad(len(m.controller.PinValue()), m.keys)
	case m.controller.Refreshing() && m.rosterList.Len() == 0:
		view += m.spinner.View() + " " + theme.NormalStyle.Render("Loading employees...")
	default:
		view += theme.SubtitleStyle.Render("Who are you?") + "\n\n"
		view += m.rosterList.View()
	}

	view += "\n\n" + renderMessage(m.controller.Message(), m.width)
	view += "\n" + m.help.ShortHelpView(m.keys.ShortHelp(m.controller.Mode(), identified))
	return view
}
