package resumes

import "errors"

var (
	// ErrNotFound indicates no resume matches the given id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedID indicates the id is not a well-formed identifier.
	ErrMalformedID = errors.New("malformed id")
)
