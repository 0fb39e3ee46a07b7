package services

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by login for any email/password
// pair that does not match a stored user. The cause (unknown email or
// wrong password) is deliberately not distinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// NotFoundError reports a missing entity by resource name and id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// UpstreamError wraps a failure of the external text-generation
// collaborator. It is degraded-but-non-fatal: handlers map it to a
// 502 without crashing the request pipeline.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsUpstreamError reports whether err is an UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
