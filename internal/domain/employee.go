package domain

import (
	"fmt"
	"strings"
)

// Status represents the attendance status of an employee
type Status string

const (
	StatusOffDuty Status = "OFF_DUTY"
	StatusOnBreak Status = "ON_BREAK"
	StatusOnDuty  Status = "ON_DUTY"
)

// Status symbols (Unicode)
const (
	SymbolOffDuty = "○" // Gray - not clocked in
	SymbolOnBreak = "◐" // Yellow - on break
	SymbolOnDuty  = "●" // Green - clocked in
)

// ParseStatus parses a status string case-insensitively.
// An empty string maps to StatusOffDuty.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(StatusOffDuty):
		return StatusOffDuty, nil
	case string(StatusOnDuty):
		return StatusOnDuty, nil
	case string(StatusOnBreak):
		return StatusOnBreak, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Label returns a human readable label for the status
func (s Status) Label() string {
	switch s {
	case StatusOnDuty:
		return "Currently clocked in"
	case StatusOnBreak:
		return "On break"
	default:
		return "Not clocked in"
	}
}

// Symbol returns the list symbol for the status
func (s Status) Symbol() string {
	switch s {
	case StatusOnDuty:
		return SymbolOnDuty
	case StatusOnBreak:
		return SymbolOnBreak
	default:
		return SymbolOffDuty
	}
}

// Employee represents a worker known to the kiosk (domain entity)
type Employee struct {
	ActiveTimesheetID string
	ID                string
	Name              string
	PinCode           string
	Status            Status
}

// HasTimesheet reports whether the employee carries an active timesheet id
func (e Employee) HasTimesheet() bool {
	return e.ActiveTimesheetID != ""
}

// Validate checks the status/timesheet invariant:
// OFF_DUTY has no timesheet id, ON_DUTY and ON_BREAK always have one.
func (e Employee) Validate() error {
	switch e.Status {
	case StatusOffDuty:
		if e.HasTimesheet() {
			return fmt.Errorf("%w: employee %s is off duty with timesheet %s", ErrInvariant, e.ID, e.ActiveTimesheetID)
		}
	case StatusOnDuty, StatusOnBreak:
		if !e.HasTimesheet() {
			return fmt.Errorf("%w: employee %s is %s without a timesheet", ErrInvariant, e.ID, e.Status)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, e.Status)
	}
	return nil
}
