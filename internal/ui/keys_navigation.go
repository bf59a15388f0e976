package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/timeclock/kiosk/internal/config"
)

// NavigationKeys defines key bindings for navigating the employee list
type NavigationKeys struct {
	Down   key.Binding
	Select key.Binding
	Up     key.Binding
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Down:   buildBinding("down", defaults, customKeys),
		Select: buildBinding("select", defaults, customKeys),
		Up:     buildBinding("up", defaults, customKeys),
	}
}

// PinKeys defines key bindings for the PIN pad. Digits are not
// configurable.
type PinKeys struct {
	Backspace key.Binding
	Clear     key.Binding
	Submit    key.Binding
}

func newPinKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) PinKeys {
	return PinKeys{
		Backspace: buildBinding("pin_backspace", defaults, customKeys),
		Clear:     buildBinding("pin_clear", defaults, customKeys),
		Submit:    buildBinding("pin_submit", defaults, customKeys),
	}
}
