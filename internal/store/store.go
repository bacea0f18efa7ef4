// Package store keeps the learner's progress in a local SQLite file: quiz
// answers, session markers and coach requests, each stamped with one
// sequence shared by all tables.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	_ "modernc.org/sqlite"
)

// pragmas are applied to every pooled connection through the DSN.
var pragmas = []string{
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

// Open opens or creates the database at path and brings its schema up to
// date.
func Open(path string) (*Store, error) {
	return OpenContext(context.Background(), path)
}

func OpenContext(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	s := &Store{db: db, drv: drv, seq: &sequenceCounter{db: db}}
	if err := s.migrate(ctx); err != nil {
		drv.Close()
		return nil, err
	}
	return s, nil
}

func dsn(path string) string {
	q := url.Values{"_time_format": {"sqlite"}}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	return path + "?" + q.Encode()
}

func (s *Store) migrate(ctx context.Context) error {
	m, err := schema.NewMigrate(s.drv)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return s.seq.seed(ctx)
}

func (s *Store) Close() error {
	return s.drv.Close()
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// DefaultDBPath is $XDG_DATA_HOME/stratiz/stratiz.db, or
// ~/.local/share/stratiz/stratiz.db. Its directory is created.
func DefaultDBPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(base, "stratiz", "stratiz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the directory that will hold path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
