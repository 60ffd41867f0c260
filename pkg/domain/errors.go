package domain

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound is returned when a record ID cannot be found in a store.
var ErrRecordNotFound = errors.New("record not found")

// CapabilityError reports a failed external capability call. It aborts the
// execution; the ethical-rejection retry loop never applies to it.
type CapabilityError struct {
	Stage string
	Err   error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability call failed in stage %q: %v", e.Stage, e.Err)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}
