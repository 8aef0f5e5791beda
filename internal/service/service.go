// Package service sits between the HTTP handlers and storage. It is a
// thin pass-through: the only logic it owns is turning a storage miss
// into ErrNotFound.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/types"
)

// People serves Person reads and writes.
type People struct {
	storage storage.Storage
}

// New returns a People service backed by s.
func New(s storage.Storage) *People {
	return &People{storage: s}
}

// AllPeople returns every stored person, unfiltered.
func (p *People) AllPeople(ctx context.Context) ([]types.Person, error) {
	return p.storage.FindAll(ctx)
}

// PersonByID returns the person with the given id, or ErrNotFound.
func (p *People) PersonByID(ctx context.Context, id int64) (types.Person, error) {
	person, err := p.storage.FindByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return types.Person{}, fmt.Errorf("person %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.Person{}, err
	}
	return person, nil
}

// Save persists person as a new record. The id is always assigned by
// storage.
func (p *People) Save(ctx context.Context, person types.Person) (types.Person, error) {
	person.ID = 0
	return p.storage.Save(ctx, person)
}
