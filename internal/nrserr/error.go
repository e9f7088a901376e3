package nrserr

import (
	"errors"
	"fmt"
)

// The kinds of error. Use errors.Is to check which kind an error is.
var (
	// ErrNotFound means the requested registry is not in the catalog.
	ErrNotFound = errors.New("registry not found")

	// ErrValidation means the user input or the configuration file was invalid.
	ErrValidation = errors.New("invalid input")

	// ErrConflict means the operation conflicts with the current state, like deleting the registry in use.
	ErrConflict = errors.New("conflict")

	// ErrPersistence means failed to read or write the configuration file.
	ErrPersistence = errors.New("failed to read/write configuration")

	// ErrManager means failed to run the package manager command.
	ErrManager = errors.New("package manager error")
)

// Error is the error type of nrs.
//
// Please use errors.Is or errors.Unwrap if you want to know what kind of error is it.
type Error struct {
	kind    error
	from    error
	message string
}

// New creates a new Error.
func New(kind error, from error, format string, args ...interface{}) Error {
	msg := fmt.Sprintf(format, args...)
	if from != nil {
		if msg != "" {
			msg += ": "
		}
		msg += from.Error()
	}

	return Error{
		kind:    kind,
		from:    from,
		message: msg,
	}
}

// Error implements error interface.
func (e Error) Error() string {
	return e.message
}

// Unwrap implement for errors.Unwrap.
func (e Error) Unwrap() error {
	return e.from
}

// Is implement for errors.Is.
func (e Error) Is(err error) bool {
	return e.kind == err
}

// Kind returns the kind of this error.
func (e Error) Kind() error {
	return e.kind
}
