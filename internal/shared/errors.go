package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Conversion errors
	ErrFileNotFound = fmt.Errorf("input file not found")
	ErrDecodeFailed = fmt.Errorf("failed to decode image")
	ErrResizeFailed = fmt.Errorf("failed to resize image")
	ErrEncodeFailed = fmt.Errorf("failed to encode image")
	ErrWriteFailed  = fmt.Errorf("failed to write output file")

	// Input validation errors
	ErrEmptyPath       = fmt.Errorf("input file name cannot be empty")
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrUserQuit signals that the user typed the quit token at a prompt.
	// It maps to a clean status-zero exit, not a failure.
	ErrUserQuit = fmt.Errorf("exited by user")
)
