package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/timeclock/kiosk/internal/domain"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Msg      tea.Msg // Message dispatched when the key is pressed (nil if handled inline)
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults and help text.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", Msg: ShowHelpMsg{}},
	{Name: "quit", Defaults: []string{"ctrl+q"}, Help: "exit kiosk", Msg: QuitMsg{}},
	{Name: "refresh", Defaults: []string{"ctrl+r", "f5"}, Help: "reload employees", Msg: RefreshRosterMsg{}},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next employee"},
	{Name: "select", Defaults: []string{"enter"}, Help: "identify selected employee"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous employee"},

	// PIN keys
	{Name: "pin_backspace", Defaults: []string{"backspace"}, Help: "delete last digit"},
	{Name: "pin_clear", Defaults: []string{"esc"}, Help: "clear PIN"},
	{Name: "pin_submit", Defaults: []string{"enter"}, Help: "submit PIN"},

	// Attendance keys
	{Name: "cancel", Defaults: []string{"esc"}, Help: "cancel and return to start", Msg: StartActionMsg{Kind: domain.ActionCancel}},
	{Name: "clock_in", Defaults: []string{"i"}, Help: "clock in", Msg: StartActionMsg{Kind: domain.ActionClockIn}},
	{Name: "clock_out", Defaults: []string{"o"}, Help: "clock out", Msg: StartActionMsg{Kind: domain.ActionClockOut}},
	{Name: "end_break", Defaults: []string{"e"}, Help: "end break", Msg: StartActionMsg{Kind: domain.ActionEndBreak}},
	{Name: "start_break", Defaults: []string{"b"}, Help: "start break", Msg: StartActionMsg{Kind: domain.ActionStartBreak}},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
