package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/domain"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Attendance  AttendanceKeys
	Navigation  NavigationKeys
	Pin         PinKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Attendance:  newAttendanceKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
		Pin:         newPinKeys(defaults, keysConfig),
	}
}

// ShortHelp returns the bindings shown in the bottom bar. Attendance keys
// are listed in the employee panel instead.
func (k KeyMap) ShortHelp(mode domain.IdentityMode, identified bool) []key.Binding {
	bindings := []key.Binding{}
	switch {
	case identified:
	case mode == domain.IdentityModePin:
		bindings = append(bindings, k.Pin.Submit, k.Pin.Backspace, k.Pin.Clear)
	default:
		bindings = append(bindings, k.Navigation.Up, k.Navigation.Down, k.Navigation.Select)
	}
	return append(bindings, k.Application.Refresh, k.Application.Help, k.Application.Quit)
}

// ActionBinding returns the binding that triggers an attendance action
func (k KeyMap) ActionBinding(kind domain.ActionKind) (key.Binding, bool) {
	switch kind {
	case domain.ActionCancel:
		return k.Attendance.Cancel, true
	case domain.ActionClockIn:
		return k.Attendance.ClockIn, true
	case domain.ActionClockOut:
		return k.Attendance.ClockOut, true
	case domain.ActionEndBreak:
		return k.Attendance.EndBreak, true
	case domain.ActionStartBreak:
		return k.Attendance.StartBreak, true
	}
	return key.Binding{}, false
}
