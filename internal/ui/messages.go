package ui

import (
	"time"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/services"
)

// Messages are produced by commands that run off the event loop and are
// fed back into Model.Update. Only Update touches the controller.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// RefreshRosterMsg requests a roster refresh from the directory
type RefreshRosterMsg struct{}

// StartActionMsg requests dispatching an attendance action for the
// identified employee
type StartActionMsg struct {
	Kind domain.ActionKind
}

// actionResultMsg carries the resolution of a dispatched remote action
type actionResultMsg struct {
	result services.ActionResult
}

// clockTickMsg updates the header clock
type clockTickMsg time.Time

// dismissMessageMsg expires the transient message with the given token
type dismissMessageMsg struct {
	token uint64
}

// rosterLoadedMsg carries a fetched roster (or the fetch error)
type rosterLoadedMsg struct {
	err    error
	roster *domain.Roster
}
