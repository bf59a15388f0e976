package domain

import "time"

// PunchOutcome records how a dispatched action resolved
type PunchOutcome string

const (
	PunchFailed    PunchOutcome = "failed"
	PunchSucceeded PunchOutcome = "succeeded"
)

// Punch is a journal entry for one dispatched attendance action
type Punch struct {
	Action       ActionKind
	EmployeeID   string
	EmployeeName string
	ID           string
	Outcome      PunchOutcome
	Reason       string
	SubmittedAt  time.Time
	TimesheetID  string
}

// PunchFilter narrows a journal listing
type PunchFilter struct {
	EmployeeID string
	Limit      int
}
