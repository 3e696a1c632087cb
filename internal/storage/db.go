// ABOUTME: Relational database connection and lifecycle management
// ABOUTME: Uses modernc.org/sqlite, pgx, or go-sql-driver/mysql behind database/sql
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DefaultTimeout bounds a single store round trip
const DefaultTimeout = 30 * time.Second

// DB wraps a database connection and its dialect
type DB struct {
	conn    *sql.DB
	dialect Dialect
	path    string
	timeout time.Duration
}

// DefaultDataDir returns the default data directory following the XDG spec.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".local/share/blogbench"
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "blogbench")
}

// DefaultDBPath returns the default SQLite database file path
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "blogbench.db")
}

// Open opens a database for the dialect and verifies the connection
func Open(ctx context.Context, dialect Dialect, dsn string) (*DB, error) {
	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}

	if dialect == SQLite {
		// SQLite allows one writer; a single connection also keeps :memory: databases shared
		conn.SetMaxOpenConns(1)
	}

	db := &DB{
		conn:    conn,
		dialect: dialect,
		path:    dsn,
		timeout: DefaultTimeout,
	}

	pingCtx, cancel := db.withTimeout(ctx)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dialect, err)
	}

	return db, nil
}

// OpenSQLite opens or creates a SQLite database file, creating its directory
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn, err := DSN(SQLite, ConnParams{Database: path})
	if err != nil {
		return nil, err
	}
	db, err := Open(ctx, SQLite, dsn)
	if err != nil {
		return nil, err
	}
	db.path = path
	return db, nil
}

// OpenInMemory creates an in-memory SQLite database (for testing)
func OpenInMemory() (*DB, error) {
	db, err := Open(context.Background(), SQLite, ":memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	db.path = ":memory:"
	return db, nil
}

// SetTimeout changes the per-call timeout; zero or negative disables it
func (db *DB) SetTimeout(d time.Duration) {
	db.timeout = d
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Conn returns the underlying sql.DB connection for advanced usage
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Dialect returns the database dialect
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Path returns the database path or DSN
func (db *DB) Path() string {
	return db.path
}

// EnsureSchema creates table and the tables it references if they do not exist
func (db *DB) EnsureSchema(ctx context.Context, table string) error {
	for _, parent := range tableParents[table] {
		if err := db.EnsureSchema(ctx, parent); err != nil {
			return err
		}
	}

	stmts, ok := schemas[table][db.dialect]
	if !ok {
		return fmt.Errorf("no schema for table %s in dialect %s", table, db.dialect)
	}
	for _, stmt := range stmts {
		if _, err := db.exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}

// WithTx runs fn in a transaction, committing only if fn succeeds
func (db *DB) WithTx(ctx context.Context, fn func(context.Context, *sql.Tx) error) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.timeout)
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	return db.conn.ExecContext(ctx, db.dialect.Rebind(query), args...)
}

// queryRow runs a single-row query and scans it into dest
func (db *DB) queryRow(ctx context.Context, query string, args []any, dest ...any) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	return db.conn.QueryRowContext(ctx, db.dialect.Rebind(query), args...).Scan(dest...)
}

// query runs a multi-row query and calls fn for every row
func (db *DB) query(ctx context.Context, query string, args []any, fn func(*sql.Rows) error) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, db.dialect.Rebind(query), args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// count returns the number of rows in table
func (db *DB) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := db.queryRow(ctx, "SELECT COUNT(*) FROM "+table, nil, &n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// txExec runs a statement inside tx using the dialect's placeholders
func (db *DB) txExec(ctx context.Context, tx *sql.Tx, query string, args ...any) (sql.Result, error) {
	return tx.ExecContext(ctx, db.dialect.Rebind(query), args...)
}

// txQueryRow scans a single row inside tx
func (db *DB) txQueryRow(ctx context.Context, tx *sql.Tx, query string, args []any, dest ...any) error {
	return tx.QueryRowContext(ctx, db.dialect.Rebind(query), args...).Scan(dest...)
}

// limitClause returns a LIMIT clause and its argument when limit is positive
func limitClause(limit int) (string, []any) {
	if limit <= 0 {
		return "", nil
	}
	return " LIMIT ?", []any{limit}
}
