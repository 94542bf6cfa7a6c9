package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the single SQLite connection held for the lifetime of the
// process. The vault is single-user and single-threaded, so one connection
// with WAL mode and a busy timeout is sufficient.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens (creating if necessary) the vault database at dbPath with WAL
// mode, a busy timeout, synchronous NORMAL, and foreign keys enabled.
func NewDB(dbPath string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)",
		dbPath,
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{conn: conn, path: dbPath}, nil
}

// Conn exposes the underlying connection for repositories and migrations.
func (db *DB) Conn() *sql.DB { return db.conn }

// Close closes the database connection.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
