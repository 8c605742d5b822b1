package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Postgres driver, registered as "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Driver names a supported database backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// ErrUnsupportedDriver is returned for a driver other than sqlite or postgres.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// ParseDriver converts a driver name. An empty name selects SQLite.
func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DriverPostgres, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, s)
}

// sqlitePragmas are applied to every SQLite connection through the DSN so
// that pooled connections all share them.
var sqlitePragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// Store owns the database handle and hands out repositories.
type Store struct {
	db     *sql.DB
	driver Driver
	seq    *sequenceCounter
}

// Open connects to the database and creates the schema if needed. For
// SQLite, dsn is a file path or a "file:" URI; for Postgres it is a
// connection URL.
func Open(driver Driver, dsn string) (*Store, error) {
	ctx := context.Background()

	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite"
		dsn = sqliteDSN(dsn)
	case DriverPostgres:
		drvName = "pgx"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, driver: driver, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Driver reports which backend the store is connected to.
func (s *Store) Driver() Driver {
	return s.driver
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// MnemonicRepo returns a MnemonicRepo backed by this store.
func (s *Store) MnemonicRepo() MnemonicRepo {
	return &mnemonicRepo{db: s.db}
}

// sqliteDSN turns a path into a URI carrying the connection pragmas.
func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	var b strings.Builder
	b.WriteString(dsn)
	for _, p := range sqlitePragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

// DefaultDBPath resolves the database file path in priority order:
// 1. KANJIZ_DB environment variable
// 2. $XDG_DATA_HOME/kanjiz/kanjiz.db
// 3. ~/.local/share/kanjiz/kanjiz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KANJIZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kanjiz", "kanjiz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
