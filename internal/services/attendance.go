package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ports"
)

// ActionCall is a dispatched remote action. It carries everything the
// directory needs so it can be executed off the event loop; it never
// touches controller state.
type ActionCall struct {
	Action       domain.Action
	EmployeeID   string
	EmployeeName string
	SubmittedAt  time.Time
	TimesheetID  string

	journal  ports.PunchWriter
	recorder ports.AttendanceRecorder
}

// ActionResult is the resolution of an ActionCall
type ActionResult struct {
	Call        *ActionCall
	Err         error
	TimesheetID string // Issued by the directory on clock-in
}

// Execute performs the remote round trip and journals the outcome.
// No retries are attempted.
func (c *ActionCall) Execute(ctx context.Context) ActionResult {
	result := ActionResult{Call: c}

	switch c.Action.Kind {
	case domain.ActionClockIn:
		timesheetID, err := c.recorder.ClockIn(ctx, ports.ClockInRequest{
			EmployeeID:   c.EmployeeID,
			EmployeeName: c.EmployeeName,
			Timestamp:    c.SubmittedAt,
		})
		if err == nil && timesheetID == "" {
			err = fmt.Errorf("%w: directory returned no timesheet id", domain.ErrRemoteAction)
		}
		result.TimesheetID = timesheetID
		result.Err = err
	case domain.ActionStartBreak:
		result.Err = c.recorder.StartBreak(ctx, c.timesheetRequest())
	case domain.ActionEndBreak:
		result.Err = c.recorder.EndBreak(ctx, c.timesheetRequest())
	case domain.ActionClockOut:
		result.Err = c.recorder.ClockOut(ctx, c.timesheetRequest())
	default:
		result.Err = fmt.Errorf("%w: %s is not a remote action", domain.ErrActionRejected, c.Action.Kind)
	}

	if result.Err != nil && !errors.Is(result.Err, domain.ErrRemoteAction) {
		result.Err = fmt.Errorf("%w: %w", domain.ErrRemoteAction, result.Err)
	}

	c.journalOutcome(ctx, result)
	return result
}

func (c *ActionCall) timesheetRequest() ports.TimesheetRequest {
	return ports.TimesheetRequest{TimesheetID: c.TimesheetID, Timestamp: c.SubmittedAt}
}

// journalOutcome appends a punch; failures are logged only
func (c *ActionCall) journalOutcome(ctx context.Context, result ActionResult) {
	if c.journal == nil {
		return
	}

	punch := domain.Punch{
		Action:       c.Action.Kind,
		EmployeeID:   c.EmployeeID,
		EmployeeName: c.EmployeeName,
		ID:           uuid.New().String(),
		Outcome:      domain.PunchSucceeded,
		SubmittedAt:  c.SubmittedAt,
		TimesheetID:  c.TimesheetID,
	}
	if result.TimesheetID != "" {
		punch.TimesheetID = result.TimesheetID
	}
	if result.Err != nil {
		punch.Outcome = domain.PunchFailed
		punch.Reason = result.Err.Error()
	}

	if err := c.journal.Record(ctx, punch); err != nil {
		logging.Logger.Error("Failed to journal punch",
			"error", err,
			"employee_id", c.EmployeeID,
			"action", c.Action.Kind)
	}
}

// AttendanceController owns the kiosk session: who is identified, which
// action is in flight and the transient message. All methods must be
// called from a single goroutine (the UI event loop); only
// ActionCall.Execute and RosterStore.Fetch may run elsewhere.
type AttendanceController struct {
	clock      ports.Clock
	journal    ports.PunchWriter
	lastToken  uint64
	recorder   ports.AttendanceRecorder
	refreshing bool
	resolver   *IdentityResolver
	roster     *RosterStore
	session    domain.Session
}

// NewAttendanceController creates a controller with an empty session.
// journal may be nil.
func NewAttendanceController(
	roster *RosterStore,
	resolver *IdentityResolver,
	recorder ports.AttendanceRecorder,
	journal ports.PunchWriter,
	clock ports.Clock,
) *AttendanceController {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &AttendanceController{
		clock:    clock,
		journal:  journal,
		recorder: recorder,
		resolver: resolver,
		roster:   roster,
	}
}

// Mode returns the identity mode in use
func (c *AttendanceController) Mode() domain.IdentityMode {
	return c.resolver.Mode()
}

// Roster returns the roster store
func (c *AttendanceController) Roster() *RosterStore {
	return c.roster
}

// Message returns the current transient message
func (c *AttendanceController) Message() domain.Message {
	return c.session.Message
}

// Pending returns the kind of the action in flight, or ""
func (c *AttendanceController) Pending() domain.ActionKind {
	return c.session.Pending
}

// Refreshing reports whether a roster refresh is running
func (c *AttendanceController) Refreshing() bool {
	return c.refreshing
}

// PinValue returns the digits typed so far
func (c *AttendanceController) PinValue() string {
	return c.session.Pin.Value()
}

// Identified re-reads the identified employee from the roster
func (c *AttendanceController) Identified() (domain.Employee, bool) {
	if !c.session.HasIdentified() {
		return domain.Employee{}, false
	}
	return c.roster.Get(c.session.IdentifiedID)
}

// AvailableActions returns the remote actions the identified employee may
// take right now. Nothing is available while an action is in flight.
func (c *AttendanceController) AvailableActions() []domain.Action {
	if c.session.InFlight() {
		return nil
	}
	e, ok := c.Identified()
	if !ok {
		return nil
	}
	return domain.RemoteActionsFor(e)
}

// Select identifies an employee picked from the roster list
func (c *AttendanceController) Select(id string) error {
	if c.resolver.Mode() != domain.IdentityModeSelect {
		return c.reject("select", "selection is disabled in pin mode")
	}
	if c.session.InFlight() {
		return c.reject("select", "action in flight")
	}
	e, err := c.resolver.ResolveSelection(id)
	if err != nil {
		return err
	}
	c.session.IdentifiedID = e.ID
	logging.Logger.Info("Employee selected", "employee_id", e.ID)
	return nil
}

// PressPinDigit appends a digit to the PIN entry.
// Input is ignored while an employee is identified.
func (c *AttendanceController) PressPinDigit(r rune) bool {
	if !c.pinLive() {
		return false
	}
	return c.session.Pin.Press(r)
}

// PinBackspace removes the last PIN digit
func (c *AttendanceController) PinBackspace() {
	if c.pinLive() {
		c.session.Pin.Backspace()
	}
}

// PinClear empties the PIN entry
func (c *AttendanceController) PinClear() {
	if c.pinLive() {
		c.session.Pin.Clear()
	}
}

// SubmitPin resolves the entered PIN. Entries shorter than MinPinLen are
// not submitted and return (false, nil). On both match and mismatch the
// entry is cleared; a mismatch sets an error message and returns
// ErrWrongPin.
func (c *AttendanceController) SubmitPin() (bool, error) {
	if !c.pinLive() {
		return false, c.reject("submit_pin", "pin entry not active")
	}
	if !c.session.Pin.Ready() {
		return false, nil
	}

	pin := c.session.Pin.Value()
	c.session.Pin.Clear()

	e, err := c.resolver.ResolvePin(pin)
	if err != nil {
		logging.Logger.Info("PIN did not match any employee")
		c.setMessage(domain.MessageError, "Wrong PIN, please try again")
		return false, err
	}

	c.session.IdentifiedID = e.ID
	logging.Logger.Info("Employee identified by PIN", "employee_id", e.ID)
	return true, nil
}

// Cancel clears the identification without contacting the directory
func (c *AttendanceController) Cancel() error {
	if c.session.InFlight() {
		return c.reject(string(domain.ActionCancel), "action in flight")
	}
	if c.session.HasIdentified() {
		logging.Logger.Info("Identification cleared", "employee_id", c.session.IdentifiedID)
	}
	c.session.IdentifiedID = ""
	c.session.Pin.Clear()
	return nil
}

// Begin validates an action against the identified employee's live
// record and enters the pending state. The returned call must be
// executed and its result passed to Complete.
func (c *AttendanceController) Begin(kind domain.ActionKind) (*ActionCall, error) {
	action := domain.GetActionByKind(kind)
	if action == nil || !action.Remote {
		return nil, c.reject(string(kind), "not a remote action")
	}
	if c.session.InFlight() {
		return nil, c.reject(string(kind), "action in flight")
	}
	if c.refreshing {
		return nil, c.reject(string(kind), "roster refresh in progress")
	}
	e, ok := c.Identified()
	if !ok {
		return nil, c.reject(string(kind), "no employee identified")
	}
	if !action.Permits(e) {
		return nil, c.reject(string(kind), fmt.Sprintf("not permitted from %s", e.Status))
	}

	// Timestamp is taken at submission, not when the call is dispatched
	submittedAt := c.clock.Now().UTC()

	c.session.Pending = kind
	c.session.PendingSince = submittedAt
	c.clearMessage()

	logging.Logger.Info("Dispatching attendance action",
		"employee_id", e.ID,
		"action", kind,
		"timesheet_id", e.ActiveTimesheetID)

	return &ActionCall{
		Action:       *action,
		EmployeeID:   e.ID,
		EmployeeName: e.Name,
		SubmittedAt:  submittedAt,
		TimesheetID:  e.ActiveTimesheetID,
		journal:      c.journal,
		recorder:     c.recorder,
	}, nil
}

// Complete reconciles the session with the directory's answer and
// returns the transient message that was set. Results that do not match
// the action in flight are ignored.
func (c *AttendanceController) Complete(result ActionResult) domain.Message {
	call := result.Call
	if call == nil || c.session.Pending != call.Action.Kind {
		logging.Logger.Warn("Ignoring stale action result")
		return domain.Message{}
	}
	c.session.Pending = ""
	c.session.PendingSince = time.Time{}

	if result.Err != nil {
		logging.Logger.Warn("Attendance action failed",
			"employee_id", call.EmployeeID,
			"action", call.Action.Kind,
			"error", result.Err)
		return c.setMessage(domain.MessageError,
			fmt.Sprintf("Failed to %s: %s", strings.ToLower(call.Action.Description), failureReason(result.Err)))
	}

	current, ok := c.roster.Get(call.EmployeeID)
	if !ok {
		logging.Logger.Warn("Employee vanished from roster before action resolved", "employee_id", call.EmployeeID)
	} else {
		updated := call.Action.Apply(current, result.TimesheetID)
		if _, err := c.roster.ApplyStatusChange(call.EmployeeID, updated.Status, updated.ActiveTimesheetID); err != nil {
			logging.Logger.Error("Failed to apply status change",
				"employee_id", call.EmployeeID,
				"action", call.Action.Kind,
				"error", err)
		}
	}

	if call.Action.ClearsIdentity && c.session.IdentifiedID == call.EmployeeID {
		c.session.IdentifiedID = ""
	}

	logging.Logger.Info("Attendance action succeeded",
		"employee_id", call.EmployeeID,
		"action", call.Action.Kind,
		"timesheet_id", result.TimesheetID)
	return c.setMessage(domain.MessageSuccess, call.Action.SuccessMessage)
}

// Perform runs an action synchronously: Begin, Execute, Complete.
// Cancel is handled locally.
func (c *AttendanceController) Perform(ctx context.Context, kind domain.ActionKind) (domain.Message, error) {
	if kind == domain.ActionCancel {
		return c.session.Message, c.Cancel()
	}
	call, err := c.Begin(kind)
	if err != nil {
		return domain.Message{}, err
	}
	msg := c.Complete(call.Execute(ctx))
	if msg.Kind == domain.MessageError {
		return msg, fmt.Errorf("%w: %s", domain.ErrRemoteAction, msg.Text)
	}
	return msg, nil
}

// BeginRefresh marks a roster refresh as started. Refreshes are rejected
// while an action is in flight, and actions while a refresh runs.
func (c *AttendanceController) BeginRefresh() error {
	if c.session.InFlight() {
		return c.reject("refresh", "action in flight")
	}
	if c.refreshing {
		return c.reject("refresh", "refresh already running")
	}
	c.refreshing = true
	return nil
}

// ApplyRoster installs a fetched roster (or applies the fallback policy)
// and reconciles the identification with it.
func (c *AttendanceController) ApplyRoster(fetched *domain.Roster, fetchErr error) LoadResult {
	c.refreshing = false
	result := c.roster.Apply(fetched, fetchErr)

	if c.session.HasIdentified() {
		if _, ok := c.roster.Get(c.session.IdentifiedID); !ok {
			logging.Logger.Info("Identified employee no longer in roster", "employee_id", c.session.IdentifiedID)
			c.session.IdentifiedID = ""
		}
	}

	if result.Outcome != OutcomeLoaded {
		c.setMessage(domain.MessageError, rosterFallbackText(result))
	}
	return result
}

// DismissMessage clears the message if token still identifies it.
// Returns false when a newer message has superseded it.
func (c *AttendanceController) DismissMessage(token uint64) bool {
	if c.session.Message.IsZero() || c.session.Message.Token != token {
		return false
	}
	c.clearMessage()
	return true
}

func (c *AttendanceController) pinLive() bool {
	return c.resolver.Mode() == domain.IdentityModePin && !c.session.HasIdentified()
}

func (c *AttendanceController) setMessage(kind domain.MessageKind, text string) domain.Message {
	c.lastToken++
	c.session.Message = domain.Message{Kind: kind, Text: text, Token: c.lastToken}
	return c.session.Message
}

func (c *AttendanceController) clearMessage() {
	c.session.Message = domain.Message{}
}

// reject logs a locally rejected action. Rejections are not surfaced to
// the user because the UI never offers the affected control.
func (c *AttendanceController) reject(action, reason string) error {
	logging.Logger.Debug("Action rejected locally", "action", action, "reason", reason)
	return fmt.Errorf("%w: %s: %s", domain.ErrActionRejected, action, reason)
}

// failureReason strips the sentinel prefix from a remote failure
func failureReason(err error) string {
	reason := err.Error()
	prefix := domain.ErrRemoteAction.Error() + ": "
	for strings.HasPrefix(reason, prefix) {
		reason = strings.TrimPrefix(reason, prefix)
	}
	return reason
}

func rosterFallbackText(result LoadResult) string {
	switch result.Outcome {
	case OutcomeRetained:
		return fmt.Sprintf("Could not refresh employees, showing last known list (%d)", result.Count)
	case OutcomeSeeded:
		return fmt.Sprintf("Could not load employees, showing default list (%d)", result.Count)
	default:
		return "Could not load employees, list is empty"
	}
}
