package handler

import "errors"

// MessageError overrides the client-facing message the error handler would
// derive from Err.
type MessageError struct {
	Err     error
	Message string
}

func (e *MessageError) Error() string { return e.Message + ": " + e.Err.Error() }

func (e *MessageError) Unwrap() error { return e.Err }

// withMessage attaches message to err when err matches target.
func withMessage(err, target error, message string) error {
	if errors.Is(err, target) {
		return &MessageError{Err: err, Message: message}
	}
	return err
}
