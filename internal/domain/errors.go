package domain

import "errors"

// ErrNotFound is returned by service functions when the requested pool or
// logbook entry does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (e.g. missing
// owner name, non-positive dimension, unknown update field).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would break a uniqueness rule, such as
// appending a log entry whose id already exists in the pool's logbook.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
