// Package memory is a map-backed storage.Storage. It is used by tests and
// by the "memory" storage driver for throwaway local runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/types"
)

// Memory implements storage.Storage. Safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	people map[int64]types.Person
	nextID int64

	// nextErr holds an error to return from the next call of the named
	// operation ("FindAll", "FindByID", "Save").
	nextErr map[string]error
}

var _ storage.Storage = (*Memory)(nil)

func New() *Memory {
	return &Memory{
		people:  make(map[int64]types.Person),
		nextErr: make(map[string]error),
	}
}

// FailNext makes the next call to op return err.
func (m *Memory) FailNext(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextErr[op] = err
}

func (m *Memory) takeErr(op string) error {
	if err, ok := m.nextErr[op]; ok {
		delete(m.nextErr, op)
		return err
	}
	return nil
}

func (m *Memory) FindAll(_ context.Context) ([]types.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr("FindAll"); err != nil {
		return nil, err
	}

	out := make([]types.Person, 0, len(m.people))
	for _, p := range m.people {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) FindByID(_ context.Context, id int64) (types.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr("FindByID"); err != nil {
		return types.Person{}, err
	}

	p, ok := m.people[id]
	if !ok {
		return types.Person{}, fmt.Errorf("FindByID %d: %w", id, storage.ErrNotFound)
	}
	return p, nil
}

func (m *Memory) Save(_ context.Context, p types.Person) (types.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr("Save"); err != nil {
		return types.Person{}, err
	}

	m.nextID++
	p.ID = m.nextID
	m.people[p.ID] = p
	return p, nil
}

func (m *Memory) Close() error { return nil }
