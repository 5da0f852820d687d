package service

import "errors"

var (
	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("service already started")

	// ErrNotStarted is returned when the service is used before Start
	// or after Stop.
	ErrNotStarted = errors.New("service not started")
)
