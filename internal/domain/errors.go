package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrParticipantNotFound = errors.New("user is not a participant of this event")
)

var (
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrCapacityExceeded  = errors.New("no free places left")
	ErrAlreadyStarted    = errors.New("event has already started")
	ErrNotStarted        = errors.New("event has not started")
	ErrFinished          = errors.New("event is already finished")
	ErrNoParticipants    = errors.New("event has no participants")
)

var (
	ErrEmailTaken   = errors.New("email is already registered")
	ErrUserInEvents = errors.New("user is registered for events")
)

var (
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

var (
	ErrValidation = errors.New("validation error")
)
