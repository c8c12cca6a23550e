// Package engine provides a thin wrapper over sqlx for the supported database
// engines. It keeps the engine type next to the connection so stores can pick
// dialect-specific queries and locking strategies.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver loaded here
	_ "modernc.org/sqlite" // sqlite driver loaded here
)

// Type is a type of database engine
type Type string

// enum of supported database engines
const (
	Unknown  Type = ""
	Sqlite   Type = "sqlite"
	Postgres Type = "postgres"
)

// SQL is a wrapper for sqlx.DB with type.
// Type allows distinguishing between different database engines.
type SQL struct {
	sqlx.DB
	gid    string // group id, to allow per-group storage in the same database
	dbType Type   // type of the database engine
}

// NewSqlite creates a new sqlite database
func NewSqlite(file, gid string) (*SQL, error) {
	db, err := sqlx.Connect("sqlite", file)
	if err != nil {
		return &SQL{}, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	return &SQL{DB: *db, gid: gid, dbType: Sqlite}, nil
}

// NewPostgres creates a new postgres connection from a standard connection string
func NewPostgres(ctx context.Context, connStr, gid string) (*SQL, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", connStr)
	if err != nil {
		return &SQL{}, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &SQL{DB: *db, gid: gid, dbType: Postgres}, nil
}

// GID returns the group id
func (e *SQL) GID() string {
	return e.gid
}

// Type returns the database engine type
func (e *SQL) Type() Type {
	return e.dbType
}

// Adopt rebinds a query with "?" placeholders to the engine's native bindvar style
func (e *SQL) Adopt(query string) string {
	return e.Rebind(query)
}

// MakeLock creates a new lock for the database engine
func (e *SQL) MakeLock() RWLocker {
	if e.dbType == Sqlite {
		return new(sync.RWMutex) // sqlite needs locking
	}
	return &NoopLocker{} // other engines don't need locking
}

// InitTable creates the table from the dialect-specific schema if it doesn't
// exist yet, in a transaction.
func InitTable(ctx context.Context, db *SQL, tableName string, schema Query) error {
	if db == nil {
		return fmt.Errorf("db connection is nil")
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var existsQuery string
	switch db.Type() {
	case Sqlite:
		existsQuery = "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?"
	case Postgres:
		existsQuery = "SELECT COUNT(*) FROM information_schema.tables WHERE table_name=$1"
	default:
		return fmt.Errorf("unsupported database type %q", db.Type())
	}

	var exists int
	if err = tx.GetContext(ctx, &exists, existsQuery, tableName); err != nil {
		return fmt.Errorf("failed to check for %s table existence: %w", tableName, err)
	}

	if exists == 0 {
		schemaQuery := schema.Sqlite
		if db.Type() == Postgres {
			schemaQuery = schema.Postgres
		}
		if _, err = tx.ExecContext(ctx, schemaQuery); err != nil {
			return fmt.Errorf("failed to create schema for %s: %w", tableName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
