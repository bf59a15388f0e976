package directory

import (
	"github.com/timeclock/kiosk/internal/domain"
)

// CallError is a failed directory call. Error() is the reason alone since
// it ends up in front of the user; Endpoint is kept for logs.
type CallError struct {
	Endpoint   string
	Reason     string
	StatusCode int // Zero for transport failures
}

func (e *CallError) Error() string {
	return e.Reason
}

// Is makes every CallError match domain.ErrRemoteAction
func (e *CallError) Is(target error) bool {
	return target == domain.ErrRemoteAction
}
