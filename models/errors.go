package models

import (
	"github.com/pkg/errors"
)

// Failure kinds surfaced by the lifecycle handlers. Callers classify with
// errors.Is; the HTTP layer maps them to response codes.
var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("operation not permitted")
	ErrConflict          = errors.New("conflicting state")
	ErrValidation        = errors.New("validation failed")
	ErrEditWindowExpired = errors.New("projects can only be edited within 15 minutes of creation")
)
