// Package sqlite stores annotated templates in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// schemaVersion is stored in PRAGMA user_version once the schema exists.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS templates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	html TEXT NOT NULL,
	content_hash TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_templates_name ON templates(name);
`

// pragma is a connection setting applied on Open.
type pragma struct {
	stmt     string
	fileOnly bool
}

var pragmas = []pragma{
	// Wait on lock contention instead of failing with "database is locked".
	{stmt: "PRAGMA busy_timeout = 5000"},
	// Batch runs read templates while another process adds one.
	{stmt: "PRAGMA journal_mode = WAL", fileOnly: true},
}

// DB is a template store database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for the file at path. ":memory:" keeps everything in
// memory for the life of the connection.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the database and migrates it to the current schema.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open template store %s: %w", db.path, err)
	}
	// One writer at a time, and a single connection keeps :memory: alive.
	conn.SetMaxOpenConns(1)

	if err := db.configure(conn); err != nil {
		conn.Close()
		return err
	}
	db.db = conn
	return nil
}

func (db *DB) configure(conn *sql.DB) error {
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("connect to template store %s: %w", db.path, err)
	}
	for _, p := range pragmas {
		if p.fileOnly && db.path == ":memory:" {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			return fmt.Errorf("%s: %w", p.stmt, err)
		}
	}

	var version int
	if err := conn.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("template store %s has schema version %d, newer than supported %d", db.path, version, schemaVersion)
	}
	if version == schemaVersion {
		return nil
	}
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

// Close releases the connection. Closing an unopened DB is a no-op.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

// QueryRowContext runs a query expected to return at most one row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext runs a query returning rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext runs a statement without returning rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
