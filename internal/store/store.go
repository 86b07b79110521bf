package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/arjun/mcqgen/ent"

	// Pure Go SQLite driver, no CGO.
	_ "modernc.org/sqlite"
)

// Store owns the SQLite connection, the ent client on top of it, and
// the shared event sequence. Repositories hand out views of it.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *eventSequence
}

// Open connects to the SQLite database at dsn, tunes it, runs
// auto-migration and prepares the event sequence.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := tuneSQLite(db); err != nil {
		db.Close()
		return nil, err
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newEventSequence(db)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("init event sequence: %w", err)
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client exposes the ent client for callers that need richer queries
// than the repositories offer.
func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the raw connection.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database.
func (s *Store) Close() error { return s.client.Close() }

// EventRepo returns the append-only event log.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// SnapshotRepo returns item snapshot storage.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{client: s.client}
}

// tuneSQLite applies the pragmas for a single-writer local database:
// WAL keeps readers unblocked during runs, the busy timeout rides out
// the occasional concurrent command, and NORMAL sync is durable enough
// for data that can be regenerated.
func tuneSQLite(db *sql.DB) error {
	for _, p := range []string{
		"journal_mode = WAL",
		"busy_timeout = 5000",
		"foreign_keys = ON",
		"synchronous = NORMAL",
	} {
		if _, err := db.Exec("PRAGMA " + p); err != nil {
			return fmt.Errorf("pragma %s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves where the database lives: MCQGEN_DB when set,
// otherwise mcqgen/mcqgen.db under the XDG data directory (defaulting
// to ~/.local/share). The parent directory is created as needed.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MCQGEN_DB"); p != "" {
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

	p := filepath.Join(dataHome, "mcqgen", "mcqgen.db")
	return p, EnsureDir(p)
}

// EnsureDir creates path's parent directory if missing.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
