package domain

import "errors"

var (
	ErrActionRejected   = errors.New("action rejected")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidStatus    = errors.New("invalid attendance status")
	ErrInvariant        = errors.New("attendance invariant violated")
	ErrRemoteAction     = errors.New("remote action failed")
	ErrRosterLoad       = errors.New("failed to load roster")
	ErrWrongPin         = errors.New("wrong PIN")
)
