package storage

import (
	"github.com/timeclock/kiosk/internal/domain"
)

// punchModelToDomain converts a PunchModel (GORM) to domain.Punch
func punchModelToDomain(m PunchModel) domain.Punch {
	return domain.Punch{
		Action:       domain.ActionKind(m.Action),
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		ID:           m.ID,
		Outcome:      domain.PunchOutcome(m.Outcome),
		Reason:       m.Reason,
		SubmittedAt:  m.SubmittedAt.UTC(),
		TimesheetID:  m.TimesheetID,
	}
}

// domainToPunchModel converts a domain.Punch to PunchModel (GORM)
func domainToPunchModel(p domain.Punch) PunchModel {
	return PunchModel{
		Action:       string(p.Action),
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		ID:           p.ID,
		Outcome:      string(p.Outcome),
		Reason:       p.Reason,
		SubmittedAt:  p.SubmittedAt.UTC(),
		TimesheetID:  p.TimesheetID,
	}
}
