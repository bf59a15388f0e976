package domain

import "time"

// IdentityMode selects how an employee identifies at the kiosk
type IdentityMode string

const (
	IdentityModePin    IdentityMode = "pin"
	IdentityModeSelect IdentityMode = "select"
)

// MessageKind classifies a transient message
type MessageKind string

const (
	MessageError   MessageKind = "error"
	MessageSuccess MessageKind = "success"
)

// Message is a transient, auto-dismissing status notification.
// Token identifies the message so a stale dismissal cannot clear a newer one.
type Message struct {
	Kind  MessageKind
	Text  string
	Token uint64
}

// IsZero reports whether no message is set
func (m Message) IsZero() bool {
	return m.Text == ""
}

// Session is the ephemeral kiosk selection state.
// IdentifiedID refers into the roster by id; it is never an owned copy.
type Session struct {
	IdentifiedID string
	Message      Message
	Pending      ActionKind // Empty when nothing is in flight
	PendingSince time.Time
	Pin          PinEntry
}

// HasIdentified reports whether an employee is currently identified
func (s *Session) HasIdentified() bool {
	return s.IdentifiedID != ""
}

// InFlight reports whether a remote action is pending
func (s *Session) InFlight() bool {
	return s.Pending != ""
}
