package services

import (
	"context"
	"fmt"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ports"
)

// RosterFallback selects what the kiosk shows when the roster cannot be
// fetched and no earlier fetch succeeded.
type RosterFallback string

const (
	// FallbackRetain keeps the last good roster, or an empty one (fail closed)
	FallbackRetain RosterFallback = "retain"
	// FallbackSeed keeps the last good roster, or the configured seed list (fail open)
	FallbackSeed RosterFallback = "seed"
)

// ParseRosterFallback validates a fallback policy name
func ParseRosterFallback(s string) (RosterFallback, error) {
	switch RosterFallback(s) {
	case FallbackRetain, FallbackSeed:
		return RosterFallback(s), nil
	case "":
		return FallbackRetain, nil
	}
	return "", fmt.Errorf("unknown roster fallback policy %q (want retain or seed)", s)
}

// LoadOutcome reports which roster is in use after a load attempt
type LoadOutcome string

const (
	OutcomeEmpty    LoadOutcome = "empty"
	OutcomeLoaded   LoadOutcome = "loaded"
	OutcomeRetained LoadOutcome = "retained"
	OutcomeSeeded   LoadOutcome = "seeded"
)

// LoadResult describes a completed roster load
type LoadResult struct {
	Count   int
	Err     error // Fetch error, nil when Outcome is OutcomeLoaded
	Outcome LoadOutcome
}

// DefaultSeedEmployees is used by FallbackSeed when no seed list is configured
var DefaultSeedEmployees = []domain.Employee{
	{ID: "1", Name: "Annabelle Cazals", Status: domain.StatusOffDuty},
	{ID: "2", Name: "Bohdan Zavhorodnii", Status: domain.StatusOffDuty},
	{ID: "3", Name: "Elzbieta Karpinska", Status: domain.StatusOffDuty},
}

// RosterStore holds the known employees and their last confirmed status.
// It is populated by Load/Apply and afterwards only mutated through
// ApplyStatusChange.
type RosterStore struct {
	fallback RosterFallback
	fetcher  ports.RosterFetcher
	hasGood  bool
	roster   *domain.Roster
	seed     []domain.Employee
}

// NewRosterStore creates an empty RosterStore
func NewRosterStore(fetcher ports.RosterFetcher, fallback RosterFallback, seed []domain.Employee) *RosterStore {
	if fallback == "" {
		fallback = FallbackRetain
	}
	return &RosterStore{
		fallback: fallback,
		fetcher:  fetcher,
		roster:   domain.NewRoster(nil),
		seed:     seed,
	}
}

// Fetch reads the roster from the directory without touching the store.
// It is safe to call off the event loop.
func (s *RosterStore) Fetch(ctx context.Context) (*domain.Roster, error) {
	entries, err := s.fetcher.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRosterLoad, err)
	}

	employees := make([]domain.Employee, 0, len(entries))
	for _, entry := range entries {
		employees = append(employees, employeeFromDirectory(entry))
	}
	return domain.NewRoster(employees), nil
}

// Apply installs a fetched roster, or applies the fallback policy when
// the fetch failed.
func (s *RosterStore) Apply(fetched *domain.Roster, fetchErr error) LoadResult {
	if fetchErr == nil && fetched != nil {
		s.roster = fetched
		s.hasGood = true
		logging.Logger.Info("Roster loaded", "count", fetched.Len())
		return LoadResult{Count: fetched.Len(), Outcome: OutcomeLoaded}
	}

	if fetchErr == nil {
		fetchErr = domain.ErrRosterLoad
	}

	result := LoadResult{Err: fetchErr}
	switch {
	case s.hasGood:
		result.Outcome = OutcomeRetained
	case s.fallback == FallbackSeed:
		seed := s.seed
		if len(seed) == 0 {
			seed = DefaultSeedEmployees
		}
		s.roster = domain.NewRoster(seed)
		result.Outcome = OutcomeSeeded
	default:
		s.roster = domain.NewRoster(nil)
		result.Outcome = OutcomeEmpty
	}
	result.Count = s.roster.Len()

	logging.Logger.Warn("Roster load failed, using fallback",
		"error", fetchErr,
		"policy", s.fallback,
		"outcome", result.Outcome,
		"count", result.Count)
	return result
}

// Load fetches and applies the roster in one step
func (s *RosterStore) Load(ctx context.Context) LoadResult {
	fetched, err := s.Fetch(ctx)
	return s.Apply(fetched, err)
}

// Get returns the live record for an employee
func (s *RosterStore) Get(id string) (domain.Employee, bool) {
	return s.roster.Get(id)
}

// FindByPin returns the first employee whose pin code matches exactly
func (s *RosterStore) FindByPin(pin string) (domain.Employee, bool) {
	return s.roster.FindByPin(pin)
}

// Employees returns the roster in order
func (s *RosterStore) Employees() []domain.Employee {
	return s.roster.List()
}

// Len returns the number of employees
func (s *RosterStore) Len() int {
	return s.roster.Len()
}

// ApplyStatusChange updates one record in place. It returns false when
// the record already carries the requested status and timesheet id.
func (s *RosterStore) ApplyStatusChange(id string, status domain.Status, timesheetID string) (bool, error) {
	current, ok := s.roster.Get(id)
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrEmployeeNotFound, id)
	}

	updated := current
	updated.Status = status
	updated.ActiveTimesheetID = timesheetID
	if err := updated.Validate(); err != nil {
		return false, err
	}

	if updated == current {
		return false, nil
	}

	s.roster.Employees[id] = updated
	logging.Logger.Debug("Employee status changed",
		"employee_id", id,
		"from", current.Status,
		"to", status,
		"timesheet_id", timesheetID)
	return true, nil
}

// employeeFromDirectory maps a directory entry to a domain employee.
// Explicit status wins over the legacy active/onBreak flags.
func employeeFromDirectory(d ports.DirectoryEmployee) domain.Employee {
	e := domain.Employee{
		ActiveTimesheetID: d.TimesheetID,
		ID:                d.ID,
		Name:              d.Name,
		PinCode:           d.PinCode,
		Status:            domain.StatusOffDuty,
	}

	if d.Status != "" {
		status, err := domain.ParseStatus(d.Status)
		if err == nil {
			e.Status = status
			return normalizeOffDuty(e)
		}
		logging.Logger.Warn("Ignoring unknown employee status", "employee_id", d.ID, "status", d.Status)
	}

	switch {
	case d.OnBreak != nil && *d.OnBreak:
		e.Status = domain.StatusOnBreak
	case d.Active != nil && *d.Active:
		e.Status = domain.StatusOnDuty
	}
	return normalizeOffDuty(e)
}

// normalizeOffDuty drops a stray timesheet id from an off-duty record
func normalizeOffDuty(e domain.Employee) domain.Employee {
	if e.Status == domain.StatusOffDuty {
		e.ActiveTimesheetID = ""
	}
	if err := e.Validate(); err != nil {
		logging.Logger.Warn("Directory entry breaks attendance invariant", "employee_id", e.ID, "error", err)
	}
	return e
}
