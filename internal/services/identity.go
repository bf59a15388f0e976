package services

import (
	"fmt"

	"github.com/timeclock/kiosk/internal/domain"
)

// ParseIdentityMode validates an identity mode name
func ParseIdentityMode(s string) (domain.IdentityMode, error) {
	switch domain.IdentityMode(s) {
	case domain.IdentityModeSelect, domain.IdentityModePin:
		return domain.IdentityMode(s), nil
	case "":
		return domain.IdentityModeSelect, nil
	}
	return "", fmt.Errorf("unknown identity mode %q (want select or pin)", s)
}

// IdentityResolver maps user input to exactly one roster entry
type IdentityResolver struct {
	mode   domain.IdentityMode
	roster *RosterStore
}

// NewIdentityResolver creates a resolver for the given deployment mode
func NewIdentityResolver(mode domain.IdentityMode, roster *RosterStore) *IdentityResolver {
	if mode == "" {
		mode = domain.IdentityModeSelect
	}
	return &IdentityResolver{mode: mode, roster: roster}
}

// Mode returns the deployment mode
func (r *IdentityResolver) Mode() domain.IdentityMode {
	return r.mode
}

// ResolveSelection looks an employee up by id
func (r *IdentityResolver) ResolveSelection(id string) (domain.Employee, error) {
	e, ok := r.roster.Get(id)
	if !ok {
		return domain.Employee{}, fmt.Errorf("%w: %s", domain.ErrEmployeeNotFound, id)
	}
	return e, nil
}

// ResolvePin returns the first employee whose pin code equals pin.
// An empty roster always yields ErrWrongPin.
func (r *IdentityResolver) ResolvePin(pin string) (domain.Employee, error) {
	e, ok := r.roster.FindByPin(pin)
	if !ok {
		return domain.Employee{}, domain.ErrWrongPin
	}
	return e, nil
}
