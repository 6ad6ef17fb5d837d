package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteFileName is the default database file of the sqlite backend.
const SQLiteFileName = "randogroup.db"

//go:embed migrations/*.sql
var migrations embed.FS

// SQLite stores lists and their entries as rows.
type SQLite struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// OpenSQLite migrates the database at path (creating it if needed) and opens it.
func OpenSQLite(ctx context.Context, path string, log *slog.Logger) (*SQLite, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	dsn := sqliteDSN(path)
	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("%w: migrate %s: %w", ErrIO, path, err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	db.SetMaxOpenConns(1) // sqlite
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	return &SQLite{db: db, path: path, log: log}, nil
}

// sqliteDSN builds a file: URI for path, escaping characters such as ? and #
// that would otherwise end the file name.
func sqliteDSN(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // windows drive letter
	}
	u := url.URL{
		Scheme:   "file",
		Path:     p,
		RawQuery: "_foreign_keys=on&_busy_timeout=5000",
	}
	return u.String()
}

// runMigrations applies the embedded migrations over its own connection;
// closing the migrator closes that connection.
func runMigrations(dsn string) error {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		_ = db.Close()
		return err
	}
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		_ = db.Close()
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *SQLite) LoadAll(ctx context.Context) (*Lists, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT l.name, e.value
	FROM lists l
	LEFT JOIN entries e ON e.list_id = l.id
	ORDER BY l.position, e.position`)
	if err != nil {
		return nil, fmt.Errorf("%w: query lists: %w", ErrIO, err)
	}
	defer rows.Close()

	var names []string
	byName := map[string][]string{}
	for rows.Next() {
		var name string
		var value sql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("%w: scan lists: %w", ErrIO, err)
		}
		if _, ok := byName[name]; !ok {
			names = append(names, name)
			byName[name] = []string{}
		}
		if value.Valid {
			byName[name] = append(byName[name], value.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read lists: %w", ErrIO, err)
	}

	lists := NewLists()
	for _, name := range names {
		lists.Set(name, byName[name])
	}
	s.log.Debug("loaded lists", "path", s.path, "count", lists.Len())
	return lists, nil
}

// SaveAll replaces every row in one transaction.
func (s *SQLite) SaveAll(ctx context.Context, lists *Lists) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, table := range []string{"entries", "lists"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		for pos, name := range lists.Names() {
			id := uuid.NewString()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO lists(id, name, position) VALUES (?, ?, ?)`, id, name, pos); err != nil {
				return fmt.Errorf("insert list %q: %w", name, err)
			}
			entries, _ := lists.Get(name)
			for i, value := range entries {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO entries(list_id, position, value) VALUES (?, ?, ?)`, id, i, value); err != nil {
					return fmt.Errorf("insert entry of %q: %w", name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: save lists: %w", ErrIO, err)
	}
	s.log.Debug("saved lists", "path", s.path, "count", lists.Len())
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
