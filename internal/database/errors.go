package database

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup that matched no row.
var ErrNotFound = errors.New("not found")

// OpError wraps a failed database operation with its context.
type OpError struct {
	Op       string
	Resource string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapSessionErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "session", Err: err}
}

func wrapPresetErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "preset", Err: err}
}
