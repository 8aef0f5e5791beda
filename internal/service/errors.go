package service

import "errors"

// ErrNotFound is returned when a lookup by id finds no person.
var ErrNotFound = errors.New("no person with this id exists")

// NotCreatedError reports that a person failed create-time validation.
// Message holds every failing rule as "<field> - <message>;".
type NotCreatedError struct {
	Message string
}

func (e *NotCreatedError) Error() string {
	return e.Message
}
