package store

import (
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store wraps the single SQLite connection behind one mutex. This is a
// single-user tool: no concurrent writers exist, so one exclusive lock
// around the connection is all the coordination needed.
type Store struct {
	conn *sql.DB
	mu   sync.Mutex
	Path string
	log  *zap.Logger
}

// Open opens (or creates) the SQLite database at path with WAL mode and
// foreign keys enabled, and applies any pending migrations.
func Open(path string, log *zap.Logger) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection only: the pool must not hand out a second handle
	// behind the mutex (and ":memory:" would otherwise mean a fresh
	// empty database per pooled connection).
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{conn: conn, Path: path, log: log}

	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Conn returns the underlying sql.DB for custom queries.
func (s *Store) Conn() *sql.DB {
	return s.conn
}
