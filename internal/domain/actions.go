package domain

// ActionKind identifies an attendance action
type ActionKind string

const (
	ActionCancel     ActionKind = "cancel"
	ActionClockIn    ActionKind = "clock_in"
	ActionClockOut   ActionKind = "clock_out"
	ActionEndBreak   ActionKind = "end_break"
	ActionStartBreak ActionKind = "start_break"
)

// Action describes one row of the attendance transition table.
// Actions with Remote set go through the directory; the rest are local.
type Action struct {
	ClearsIdentity    bool
	Description       string
	From              []Status // Empty means any status
	Kind              ActionKind
	Remote            bool
	RequiresTimesheet bool
	SuccessMessage    string
	To                Status // Empty means status is left untouched
}

// Actions is the canonical registry of attendance actions.
// Sorted alphabetically by Kind.
var Actions = []Action{
	{Kind: ActionCancel, Description: "Cancel", ClearsIdentity: true},
	{
		Kind:           ActionClockIn,
		Description:    "Clock In",
		From:           []Status{StatusOffDuty},
		Remote:         true,
		SuccessMessage: "Successfully clocked in!",
		To:             StatusOnDuty,
	},
	{
		Kind:              ActionClockOut,
		Description:       "Clock Out",
		ClearsIdentity:    true,
		From:              []Status{StatusOnDuty},
		Remote:            true,
		RequiresTimesheet: true,
		SuccessMessage:    "Successfully clocked out!",
		To:                StatusOffDuty,
	},
	{
		Kind:              ActionEndBreak,
		Description:       "End Break",
		From:              []Status{StatusOnBreak},
		Remote:            true,
		RequiresTimesheet: true,
		SuccessMessage:    "Break ended!",
		To:                StatusOnDuty,
	},
	{
		Kind:              ActionStartBreak,
		Description:       "Start Break",
		From:              []Status{StatusOnDuty},
		Remote:            true,
		RequiresTimesheet: true,
		SuccessMessage:    "Break started!",
		To:                StatusOnBreak,
	},
}

// GetActionByKind returns an action by its kind, or nil if not found.
func GetActionByKind(kind ActionKind) *Action {
	for i := range Actions {
		if Actions[i].Kind == kind {
			return &Actions[i]
		}
	}
	return nil
}

// AllowedFrom reports whether the action may start from the given status
func (a Action) AllowedFrom(status Status) bool {
	if len(a.From) == 0 {
		return true
	}
	for _, s := range a.From {
		if s == status {
			return true
		}
	}
	return false
}

// Permits reports whether the employee satisfies the action's preconditions
func (a Action) Permits(e Employee) bool {
	if !a.AllowedFrom(e.Status) {
		return false
	}
	if a.RequiresTimesheet && !e.HasTimesheet() {
		return false
	}
	return true
}

// Apply returns the employee after a successful transition.
// timesheetID is only used when entering ON_DUTY from OFF_DUTY.
func (a Action) Apply(e Employee, timesheetID string) Employee {
	if a.To == "" {
		return e
	}
	switch {
	case a.To == StatusOffDuty:
		e.ActiveTimesheetID = ""
	case e.Status == StatusOffDuty:
		e.ActiveTimesheetID = timesheetID
	}
	e.Status = a.To
	return e
}

// RemoteActionsFor returns the remote actions permitted for the employee,
// in the order a kiosk presents them.
func RemoteActionsFor(e Employee) []Action {
	order := []ActionKind{ActionClockIn, ActionEndBreak, ActionStartBreak, ActionClockOut}
	var allowed []Action
	for _, kind := range order {
		a := GetActionByKind(kind)
		if a.Remote && a.Permits(e) {
			allowed = append(allowed, *a)
		}
	}
	return allowed
}
