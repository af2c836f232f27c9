package repository

import "errors"

// ErrNotFound is returned when a lookup matches no entity, including
// an availability scan over a fully occupied driver pool.
var ErrNotFound = errors.New("entity not found")
