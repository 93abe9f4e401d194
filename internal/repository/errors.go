package repository

import "errors"

// ErrNotFound is returned by Get/Update/Delete operations when no row
// matches. Services translate it into the resource-specific coded error.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// the service did not pre-check.
var ErrDuplicate = errors.New("duplicate")
