package blog

import "errors"

var (
	// ErrValidation is returned when input is missing or references something that does not exist.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when the target post, category or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique value could not be claimed. The whole mutation may be retried.
	ErrConflict = errors.New("conflict")
	// ErrPreconditionFailed is returned when a domain rule refuses the operation.
	ErrPreconditionFailed = errors.New("precondition failed")
)
