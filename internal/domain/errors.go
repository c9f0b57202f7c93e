package domain

import (
	"errors"
	"fmt"
)

// The error taxonomy shared by the HTTP and gRPC boundaries. Every failure
// surfaced to a caller is one of these; anything unexpected is wrapped in an
// InternalError so internal detail never crosses a process boundary.

// ValidationError reports malformed input detected before any storage or
// remote call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateError reports a conflicting (user, book) pair.
type DuplicateError struct {
	Entity string
	Key    string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists for %s", e.Entity, e.Key)
}

// NotFoundError reports an absent entity, scoped to which entity could not
// be resolved. Entity distinguishes a missing local favorite from a missing
// remote user or book.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// RemoteUnavailableError reports a transport-level failure talking to a
// remote service. It is deliberately distinct from NotFoundError: "book does
// not exist" and "books service is down" must never be conflated.
type RemoteUnavailableError struct {
	Service string
	Err     error
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
}

func (e *RemoteUnavailableError) Unwrap() error { return e.Err }

// InternalError wraps unexpected storage or serialization failures. Only the
// stable "internal error" text crosses a service boundary; Err is for logs.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "internal error" }

func (e *InternalError) Unwrap() error { return e.Err }

// Convenience predicates used by the boundary adapters.

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsDuplicate(err error) bool {
	var d *DuplicateError
	return errors.As(err, &d)
}

func IsRemoteUnavailable(err error) bool {
	var ru *RemoteUnavailableError
	return errors.As(err, &ru)
}
