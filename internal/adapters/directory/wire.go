package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire form of every timestamp: UTC, millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp marshals as TimestampLayout
type Timestamp time.Time

// MarshalJSON encodes the instant in UTC
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(TimestampLayout))
}

// UnmarshalJSON accepts TimestampLayout or any RFC 3339 value
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

// Time returns the underlying instant
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// ID is an opaque identifier. It marshals as a string and unmarshals from
// either a JSON string or a JSON number.
type ID string

// UnmarshalJSON accepts "42", 42 and null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number, got %s", data)
	}
	*id = ID(n.String())
	return nil
}

// EmployeeJSON is one entry of the GetEmployees response
type EmployeeJSON struct {
	Active             *bool  `json:"active,omitempty"`
	CurrentTimesheetID ID     `json:"currentTimesheetId,omitempty"`
	ID                 ID     `json:"id"`
	Name               string `json:"name"`
	OnBreak            *bool  `json:"onBreak,omitempty"`
	PinCode            string `json:"pinCode,omitempty"`
	Status             string `json:"status,omitempty"`
	TimesheetID        ID     `json:"timesheetId,omitempty"`
}

// EmployeesResponse is the GetEmployees body
type EmployeesResponse struct {
	Employees []EmployeeJSON `json:"employees"`
}

// ClockInPayload is the ClockIn request body
type ClockInPayload struct {
	ClockInTimestamp Timestamp `json:"clockInTimestamp"`
	EmployeeID       string    `json:"employeeId"`
	EmployeeName     string    `json:"employeeName"`
}

// ClockInResponse is the ClockIn response body
type ClockInResponse struct {
	TimesheetID ID `json:"timesheetId"`
}

// StartBreakPayload is the StartBreak request body
type StartBreakPayload struct {
	BreakStartTimestamp Timestamp `json:"breakStartTimestamp"`
	TimesheetID         string    `json:"timesheetId"`
}

// EndBreakPayload is the EndBreak request body
type EndBreakPayload struct {
	BreakEndTimestamp Timestamp `json:"breakEndTimestamp"`
	TimesheetID       string    `json:"timesheetId"`
}

// ClockOutPayload is the ClockOut request body
type ClockOutPayload struct {
	ClockOutTimestamp Timestamp `json:"clockOutTimestamp"`
	TimesheetID       string    `json:"timesheetId"`
}

// ErrorResponse is the body of a non-2xx answer, when the service sends one
type ErrorResponse struct {
	Error string `json:"error"`
}

// decodeEmployees accepts {"employees": [...]} or a bare array
func decodeEmployees(body []byte) ([]EmployeeJSON, error) {
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped EmployeesResponse
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode employees: %w", err)
		}
		return wrapped.Employees, nil
	}

	var bare []EmployeeJSON
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return bare, nil
}
