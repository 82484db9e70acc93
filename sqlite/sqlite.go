// Package sqlite provides a local search index of canonical records backed
// by SQLite with an FTS5 full-text table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// schema holds the record table and its full-text mirror. records_fts is
// kept in step with records by RecordIndex inside the same transaction.
const schema = `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL DEFAULT '',
	section TEXT NOT NULL,
	date TEXT NOT NULL DEFAULT '',
	author TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]',
	categories TEXT NOT NULL DEFAULT '[]',
	menu_item TEXT NOT NULL DEFAULT '',
	menu_category TEXT NOT NULL DEFAULT '',
	store_name TEXT NOT NULL DEFAULT '',
	price TEXT NOT NULL DEFAULT '',
	price_range TEXT NOT NULL DEFAULT '',
	introduction TEXT NOT NULL DEFAULT '',
	ingredients TEXT NOT NULL DEFAULT '',
	content_hash TEXT NOT NULL DEFAULT '',
	indexed_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_section ON records(section);
CREATE INDEX IF NOT EXISTS idx_records_menu_category ON records(menu_category);
CREATE INDEX IF NOT EXISTS idx_records_price_range ON records(price_range);

CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
	id UNINDEXED,
	title,
	menu_item,
	store_name,
	content
);
`

type pragma struct {
	stmt     string
	fileOnly bool
}

// pragmas run on every new connection. WAL needs a file on disk.
var pragmas = []pragma{
	{stmt: "PRAGMA busy_timeout = 5000"},
	{stmt: "PRAGMA journal_mode = WAL", fileOnly: true},
}

// DB is the SQLite database holding the record index.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for path. Pass ":memory:" for a throwaway index.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the database and creates the record tables if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open index database: %w", err)
	}
	// One writer at a time.
	conn.SetMaxOpenConns(1)

	if err := db.prepare(conn); err != nil {
		conn.Close()
		return err
	}
	db.db = conn
	return nil
}

func (db *DB) prepare(conn *sql.DB) error {
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("connect to index database %s: %w", db.path, err)
	}
	for _, p := range pragmas {
		if p.fileOnly && db.path == memoryPath {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			return fmt.Errorf("%s: %w", p.stmt, err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("create record schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
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

// BeginTx starts a read-write transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}
