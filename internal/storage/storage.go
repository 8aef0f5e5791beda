// Package storage defines the Storage interface, the contract any
// database backend must satisfy to work with this application.
//
// Handlers and the service layer depend only on this interface, so the
// backend (SQLite or PostgreSQL) is picked once at startup and tests can
// pass an in-memory fake.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/people-api/internal/types"
)

// ErrNotFound is returned by FindByID when no row has the requested id.
var ErrNotFound = errors.New("person not found")

// Storage is the database contract.
type Storage interface {
	// FindAll returns every person ordered by id.
	// Returns an empty slice (not nil) if there are none.
	FindAll(ctx context.Context) ([]types.Person, error)

	// FindByID fetches a single person by primary key.
	// Returns ErrNotFound if no such row exists.
	FindByID(ctx context.Context, id int64) (types.Person, error)

	// Save inserts p as a new row and returns it with the generated id.
	// Any id already set on p is ignored.
	Save(ctx context.Context, p types.Person) (types.Person, error)

	// Close releases the underlying connection pool.
	Close() error
}
