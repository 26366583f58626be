package booking

import "fmt"

// ConflictError reports a requested slot that overlaps an existing
// commitment or falls outside the staff member's working window.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("bookingConflict: %s", e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}
