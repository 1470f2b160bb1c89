package wizard

import "errors"

var (
	// ErrSessionNotFound is returned when a session ID does not resolve,
	// either because it never existed or its TTL lapsed.
	ErrSessionNotFound = errors.New("wizard session not found or expired")

	// ErrStepOrder is returned when an event targets a step whose
	// preconditions are unmet on the session's current branch.
	ErrStepOrder = errors.New("step not reachable in the current branch")

	// ErrNotReadyToConfirm is returned when confirm is attempted before the
	// session reaches its terminal step.
	ErrNotReadyToConfirm = errors.New("session has not reached its final step")

	// ErrUnknownService is returned for a service outside flooring/cleaning.
	ErrUnknownService = errors.New("unknown service type")
)

// ValidationError is a gate rejection carrying the offending field. It blocks
// the transition and is surfaced inline; it never reaches a collaborator.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
