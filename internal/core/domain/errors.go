package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("forbidden access")
	ErrStudentNotFound    = errors.New("student does not exist")
	ErrEnrollmentNotFound = errors.New("enrollment does not exist")
	ErrEnrollmentExists   = errors.New("enrollment already exists")
)
