package storage

import "time"

// PunchModel is the GORM model for the punches table
type PunchModel struct {
	Action       string    `gorm:"not null;check:action IN ('clock_in','clock_out','start_break','end_break')"`
	CreatedAt    time.Time
	EmployeeID   string    `gorm:"not null;index:idx_employee_submitted,priority:1"`
	EmployeeName string    `gorm:"not null;default:''"`
	ID           string    `gorm:"primaryKey"`
	Outcome      string    `gorm:"not null;check:outcome IN ('succeeded','failed')"`
	Reason       string    `gorm:"not null;default:''"`
	SubmittedAt  time.Time `gorm:"not null;index:idx_submitted_at;index:idx_employee_submitted,priority:2"`
	TimesheetID  string    `gorm:"not null;default:'';index:idx_timesheet_id"`
}

// TableName specifies the table name for GORM
func (PunchModel) TableName() string { return "punches" }
