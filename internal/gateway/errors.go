package gateway

import "errors"

// Common gateway errors
var (
	// ErrValidation wraps client-side pre-flight failures; no network call
	// was made when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrScheduledInPast is returned when a meeting is created with a
	// scheduled_for earlier than now.
	ErrScheduledInPast = errors.New("scheduled time is in the past")
)
