package store

import "errors"

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("record not found")
