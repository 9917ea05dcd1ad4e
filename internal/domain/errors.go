package domain

import "errors"

var (
	// ErrInvalidSession is returned when a session is constructed with no questions.
	ErrInvalidSession = errors.New("session requires a non-empty question set")
	// ErrInvalidState is returned when a transition is called outside its valid phase.
	// It signals a caller bug, not a recoverable condition.
	ErrInvalidState = errors.New("transition not valid in current phase")
	// ErrUnitNotFound indicates the requested unit id is not part of the course.
	ErrUnitNotFound = errors.New("unit not found")
	// ErrGenerationBusy indicates a generation call is already in flight.
	ErrGenerationBusy = errors.New("generation already in progress")
	// ErrNoSession indicates an intent that needs an active session arrived without one.
	ErrNoSession = errors.New("no active quiz session")
)

// GenerationError classifies a failed generation-gateway call. Authorization
// failures are recoverable by re-issuing the access credential; everything
// else is retryable without user action.
type GenerationError struct {
	Authorization bool
	Err           error
}

func (e *GenerationError) Error() string {
	if e.Authorization {
		return "generation authorization failed: " + e.Err.Error()
	}
	return "generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsAuthorization reports whether err is a generation failure caused by a
// missing or rejected credential.
func IsAuthorization(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr) && genErr.Authorization
}
