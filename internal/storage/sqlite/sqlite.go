// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite stores everything in a single file on disk: no network, no
// separate server process, nothing to install beyond the driver.
//
// The blank import below registers the "sqlite3" driver with
// database/sql. We never call anything from it directly.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/people-api/internal/config"
	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is a connection pool and is safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at cfg.Storage.DSN, creates the person
// table if it does not already exist, and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet; it only validates the
	// driver name. The first actual connection happens on the first query.
	db, err := sql.Open("sqlite3", cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent, safe on every startup.
	//
	// AUTOINCREMENT (not just INTEGER PRIMARY KEY) guarantees an id is
	// never handed out twice, even after the highest row is removed by
	// hand.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS person (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT    NOT NULL,
			age   INTEGER NOT NULL,
			email TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Save inserts a new row into the person table.
//
// Placeholders (?) keep user input out of the SQL text: the driver sends
// the statement and the values separately, so a name like
// "'; DROP TABLE person; --" is stored as plain data.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Save(ctx context.Context, p types.Person) (types.Person, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"INSERT INTO person (name, age, email) VALUES (?, ?, ?)",
	)
	if err != nil {
		return types.Person{}, fmt.Errorf("Save: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, p.Name, p.Age, p.Email)
	if err != nil {
		return types.Person{}, fmt.Errorf("Save: exec: %w", err)
	}

	// LastInsertId returns the auto-generated primary key of the new row.
	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Person{}, fmt.Errorf("Save: last insert id: %w", err)
	}

	p.ID = lastID
	return p, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// FindByID fetches exactly one person row matched by primary key.
//
// QueryRow never returns nil on a miss; the sql.ErrNoRows sentinel only
// surfaces when Scan is called.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) FindByID(ctx context.Context, id int64) (types.Person, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT id, name, age, email FROM person WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Person{}, fmt.Errorf("FindByID: prepare: %w", err)
	}
	defer stmt.Close()

	var p types.Person
	err = stmt.QueryRowContext(ctx, id).Scan(&p.ID, &p.Name, &p.Age, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Person{}, fmt.Errorf("FindByID %d: %w", id, storage.ErrNotFound)
		}
		return types.Person{}, fmt.Errorf("FindByID: scan: %w", err)
	}

	return p, nil
}

// FindAll returns all person rows in insertion (id) order.
func (s *SQLite) FindAll(ctx context.Context) ([]types.Person, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT id, name, age, email FROM person ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("FindAll: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAll: query: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty table encodes as [] rather than null.
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

// Close closes the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
