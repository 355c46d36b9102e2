package domain

import "errors"

// ErrNotFound is matched by every entity-specific not-found error, so callers
// that do not care which entity was missing can test errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound      error = &notFoundError{entity: "user"}
	ErrRoleNotFound      error = &notFoundError{entity: "role"}
	ErrProductNotFound   error = &notFoundError{entity: "product"}
	ErrOrderNotFound     error = &notFoundError{entity: "order"}
	ErrOrderItemNotFound error = &notFoundError{entity: "order item"}
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrConflict           = errors.New("conflicting state")
	ErrValidation         = errors.New("validation failed")
)

type notFoundError struct {
	entity string
}

func (e *notFoundError) Error() string {
	return e.entity + " not found"
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrNotFound
}
