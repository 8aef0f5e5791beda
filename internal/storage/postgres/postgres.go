// Package postgres provides a PostgreSQL implementation of
// storage.Storage on top of database/sql and the lib/pq driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/people-api/internal/config"
	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/types"

	_ "github.com/lib/pq"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS person (
		id    SERIAL PRIMARY KEY,
		name  VARCHAR(30) NOT NULL,
		age   INTEGER     NOT NULL,
		email TEXT        NOT NULL
	)`

// Postgres implements storage.Storage.
type Postgres struct {
	db *sql.DB
}

var _ storage.Storage = (*Postgres)(nil)

// New connects to cfg.Storage.DSN and ensures the person table exists.
func New(cfg *config.Config) (*Postgres, error) {
	db, err := sql.Open("postgres", cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: open db: %w", err)
	}

	p, err := NewWithDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

// NewWithDB wraps an already opened pool. The caller hands ownership of
// db to the returned value; Close closes it.
func NewWithDB(db *sql.DB) (*Postgres, error) {
	if _, err := db.Exec(createTable); err != nil {
		return nil, fmt.Errorf("postgres.New: create table: %w", err)
	}
	return &Postgres{db: db}, nil
}

// Save inserts p and reads the generated id back with RETURNING, since
// lib/pq does not support LastInsertId.
func (s *Postgres) Save(ctx context.Context, p types.Person) (types.Person, error) {
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO person (name, age, email) VALUES ($1, $2, $3) RETURNING id",
		p.Name, p.Age, p.Email,
	).Scan(&p.ID)
	if err != nil {
		return types.Person{}, fmt.Errorf("Save: insert: %w", err)
	}
	return p, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (types.Person, error) {
	var p types.Person
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, age, email FROM person WHERE id = $1",
		id,
	).Scan(&p.ID, &p.Name, &p.Age, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Person{}, fmt.Errorf("FindByID %d: %w", id, storage.ErrNotFound)
		}
		return types.Person{}, fmt.Errorf("FindByID: scan: %w", err)
	}
	return p, nil
}

func (s *Postgres) FindAll(ctx context.Context) ([]types.Person, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, age, email FROM person ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("FindAll: query: %w", err)
	}
	defer rows.Close()

	people := make([]types.Person, 0)
	for rows.Next() {
		var p types.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Email); err != nil {
			return nil, fmt.Errorf("FindAll: scan row: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FindAll: rows iteration: %w", err)
	}
	return people, nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}
