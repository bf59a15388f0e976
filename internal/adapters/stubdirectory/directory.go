package stubdirectory

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/timeclock/kiosk/internal/domain"
)

var (
	ErrConflict         = errors.New("transition not allowed")
	ErrUnknownEmployee  = errors.New("unknown employee")
	ErrUnknownTimesheet = errors.New("unknown timesheet")
)

// Timesheet is one open or closed shift
type Timesheet struct {
	BreakEnds   []time.Time
	BreakStarts []time.Time
	ClockIn     time.Time
	ClockOut    time.Time
	EmployeeID  string
	ID          string
}

// Directory is an in-memory directory service. It applies the same
// transition table as the kiosk.
type Directory struct {
	employees  *domain.Roster
	mu         sync.Mutex
	nextID     int
	timesheets map[string]*Timesheet
}

// New creates a directory seeded with employees, all off duty
func New(seed []domain.Employee) *Directory {
	employees := make([]domain.Employee, 0, len(seed))
	for _, e := range seed {
		e.Status = domain.StatusOffDuty
		e.ActiveTimesheetID = ""
		employees = append(employees, e)
	}
	return &Directory{
		employees:  domain.NewRoster(employees),
		timesheets: make(map[string]*Timesheet),
	}
}

// Employees returns the current roster
func (d *Directory) Employees() []domain.Employee {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.employees.List()
}

// Timesheet returns a copy of a timesheet
func (d *Directory) Timesheet(id string) (Timesheet, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ts, ok := d.timesheets[id]
	if !ok {
		return Timesheet{}, false
	}
	return *ts, true
}

// ClockIn opens a timesheet and returns its id (T1, T2, ...)
func (d *Directory) ClockIn(employeeID string, at time.Time) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.employees.Get(employeeID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEmployee, employeeID)
	}
	if err := d.transition(&e, domain.ActionClockIn); err != nil {
		return "", err
	}

	d.nextID++
	id := "T" + strconv.Itoa(d.nextID)
	d.timesheets[id] = &Timesheet{ClockIn: at, EmployeeID: employeeID, ID: id}

	d.store(domain.GetActionByKind(domain.ActionClockIn).Apply(e, id))
	return id, nil
}

// StartBreak puts the timesheet's employee on break
func (d *Directory) StartBreak(timesheetID string, at time.Time) error {
	return d.onTimesheet(timesheetID, domain.ActionStartBreak, func(ts *Timesheet) {
		ts.BreakStarts = append(ts.BreakStarts, at)
	})
}

// EndBreak returns the timesheet's employee to duty
func (d *Directory) EndBreak(timesheetID string, at time.Time) error {
	return d.onTimesheet(timesheetID, domain.ActionEndBreak, func(ts *Timesheet) {
		ts.BreakEnds = append(ts.BreakEnds, at)
	})
}

// ClockOut closes the timesheet
func (d *Directory) ClockOut(timesheetID string, at time.Time) error {
	return d.onTimesheet(timesheetID, domain.ActionClockOut, func(ts *Timesheet) {
		ts.ClockOut = at
	})
}

func (d *Directory) onTimesheet(timesheetID string, kind domain.ActionKind, record func(*Timesheet)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ts, ok := d.timesheets[timesheetID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTimesheet, timesheetID)
	}
	e, ok := d.employees.Get(ts.EmployeeID)
	if !ok || e.ActiveTimesheetID != timesheetID {
		return fmt.Errorf("%w: timesheet %s is closed", ErrConflict, timesheetID)
	}
	if err := d.transition(&e, kind); err != nil {
		return err
	}

	record(ts)
	d.store(domain.GetActionByKind(kind).Apply(e, timesheetID))
	return nil
}

func (d *Directory) transition(e *domain.Employee, kind domain.ActionKind) error {
	action := domain.GetActionByKind(kind)
	if !action.AllowedFrom(e.Status) {
		return fmt.Errorf("%w: %s while %s", ErrConflict, action.Description, e.Status)
	}
	return nil
}

func (d *Directory) store(e domain.Employee) {
	d.employees.Employees[e.ID] = e
}
