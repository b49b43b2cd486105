package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMissingData indicates a structural field expected in a remote
	// response (sheet list, grid properties, document identifier) was
	// absent. Raised at the point of detection, never retried.
	ErrMissingData = errors.New("missing data in remote response")

	// Authentication errors.

	// ErrAuthRequired indicates an operation needs credentials but none
	// are configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates credential derivation yielded no usable
	// session. Fatal, surfaced to the caller, no retry.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrProfileInUse indicates a credential profile cannot be deleted
	// because it is the configured default.
	ErrProfileInUse = errors.New("credential profile is in use")
)
