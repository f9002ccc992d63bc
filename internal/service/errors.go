package service

import "errors"

// Failure taxonomy shared by every service. Handlers map these to HTTP
// statuses; anything else is a remote failure and surfaces as a 500.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidArgument = errors.New("invalid argument")
)
