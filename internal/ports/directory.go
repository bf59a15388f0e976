package ports

import (
	"context"
	"time"
)

// DirectoryEmployee is a roster entry as reported by the directory service.
// Status and the legacy Active/OnBreak flags are optional.
type DirectoryEmployee struct {
	Active      *bool
	ID          string
	Name        string
	OnBreak     *bool
	PinCode     string
	Status      string
	TimesheetID string
}

// ClockInRequest carries the correlation data for a clock-in
type ClockInRequest struct {
	EmployeeID   string
	EmployeeName string
	Timestamp    time.Time
}

// TimesheetRequest carries the correlation data for break and clock-out calls
type TimesheetRequest struct {
	TimesheetID string
	Timestamp   time.Time
}

// RosterFetcher reads the employee roster from the directory
type RosterFetcher interface {
	GetEmployees(ctx context.Context) ([]DirectoryEmployee, error)
}

// AttendanceRecorder records attendance events in the directory.
// Every failure, transport or status, is reported as an error.
type AttendanceRecorder interface {
	ClockIn(ctx context.Context, req ClockInRequest) (string, error)
	ClockOut(ctx context.Context, req TimesheetRequest) error
	EndBreak(ctx context.Context, req TimesheetRequest) error
	StartBreak(ctx context.Context, req TimesheetRequest) error
}

// DirectoryClient is the composite interface
type DirectoryClient interface {
	RosterFetcher
	AttendanceRecorder
}
