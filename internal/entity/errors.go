package entity

import "errors"

// ErrNotFound is returned when a lookup by identifier or name matches no
// persisted record.
var ErrNotFound = errors.New("record not found")
