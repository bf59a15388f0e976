package ports

import (
	"context"

	"github.com/timeclock/kiosk/internal/domain"
)

// PunchWriter appends punches to the journal
type PunchWriter interface {
	Record(ctx context.Context, punch domain.Punch) error
}

// PunchReader lists punches, newest first
type PunchReader interface {
	List(ctx context.Context, filter domain.PunchFilter) ([]domain.Punch, error)
}

// PunchJournal is the composite interface
type PunchJournal interface {
	PunchWriter
	PunchReader
	Close() error
}
