package assist

import "errors"

var (
	// ErrInvalidInput indicates a missing required prompt input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream indicates the generative-text provider call failed.
	ErrUpstream = errors.New("upstream provider error")
)
