// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles:
// handlers, service, validation and storage all import types without
// depending on each other.
package types

// Person is the single resource exposed by the API.
//
// ID is assigned by the storage layer on first save and never changes.
// Field constraints are enforced by the validation package before a
// Person reaches storage, not by the database. Age is int32 to match the
// INTEGER column: a larger number fails JSON decoding with a 400.
type Person struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int32  `json:"age"`
	Email string `json:"email"`
}
