package transcript

import "errors"

var (
	// ErrSourceNotFound is returned when the transcript root directory
	// does not exist. This is a setup failure and is never retried.
	ErrSourceNotFound = errors.New("transcript source not found")

	// ErrSessionNotFound is returned when no transcript unit exists for
	// the requested session id.
	ErrSessionNotFound = errors.New("session not found")
)
