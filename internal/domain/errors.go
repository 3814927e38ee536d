package domain

import "errors"

// Distinguished error kinds used across the service. Handlers map these to
// HTTP statuses; everything else is treated as an internal server fault.
var (
	// ErrInvalidUserInput marks caller-supplied data that failed a domain
	// check. It is never logged as a server fault.
	ErrInvalidUserInput = errors.New("invalid user input")

	// ErrUnknownBackend is returned when a translator backend id is not
	// present in the registry. Configuration error, not recoverable at
	// runtime.
	ErrUnknownBackend = errors.New("unknown translator backend")

	// ErrUnknownCollection is returned for a collection name outside the
	// two the store is configured with.
	ErrUnknownCollection = errors.New("unknown collection")
)
