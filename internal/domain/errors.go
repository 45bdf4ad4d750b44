package domain

import "errors"

// Domain errors
var (
	ErrChapterNotFound   = errors.New("chapter not found")
	ErrHighlightNotFound = errors.New("highlight not found")
	ErrVoiceJobNotFound  = errors.New("voice job not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidToken      = errors.New("invalid token")
	ErrNotPersisted      = errors.New("write was not persisted")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
