package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/timeclock/kiosk/internal/config"
)

// AttendanceKeys defines key bindings available once an employee is identified
type AttendanceKeys struct {
	Cancel     key.Binding
	ClockIn    key.Binding
	ClockOut   key.Binding
	EndBreak   key.Binding
	StartBreak key.Binding
}

// newAttendanceKeys creates attendance key bindings
func newAttendanceKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) AttendanceKeys {
	return AttendanceKeys{
		Cancel:     buildBinding("cancel", defaults, customKeys),
		ClockIn:    buildBinding("clock_in", defaults, customKeys),
		ClockOut:   buildBinding("clock_out", defaults, customKeys),
		EndBreak:   buildBinding("end_break", defaults, customKeys),
		StartBreak: buildBinding("start_break", defaults, customKeys),
	}
}
