package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingProfile marks a workbook whose profile sheet lacks a
	// required field; the whole file is skipped.
	ErrMissingProfile = errors.New("profile sheet missing required field")
	// ErrMissingCycle marks a workbook with no resolvable cycle name.
	ErrMissingCycle = errors.New("profile sheet missing cycle name")
)
