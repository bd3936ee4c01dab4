// Package sqlite persists the relationship profile in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.ProfileStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements ProfileStore
var _ ports.ProfileStore = (*Store)(nil)

// NewStore creates a new, unopened SQLite store
func NewStore() *Store {
	return &Store{}
}

// Open creates or opens the database at dbPath and ensures the schema
func (s *Store) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			your_name TEXT NOT NULL,
			partner_name TEXT NOT NULL,
			start_date TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS start_date_history (
			changed_at TEXT NOT NULL,
			start_date TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SchemaVersion returns the schema version recorded in the database
func (s *Store) SchemaVersion(ctx context.Context) (string, error) {
	var version string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	return version, err
}

// Load returns the stored profile, or application.ErrNoProfile
func (s *Store) Load(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	var start, updated string

	err := s.db.QueryRowContext(ctx, `
		SELECT your_name, partner_name, start_date, updated_at
		FROM profile WHERE id = 1
	`).Scan(&p.YourName, &p.PartnerName, &start, &updated)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, application.ErrNoProfile
	}
	if err != nil {
		return nil, err
	}

	if p.StartDate, err = time.Parse(time.RFC3339Nano, start); err != nil {
		return nil, fmt.Errorf("corrupt start date %q: %w", start, err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("corrupt updated_at %q: %w", updated, err)
	}

	return &p, nil
}

// Save replaces the stored profile. A changed start date is appended to the
// start date history.
func (s *Store) Save(ctx context.Context, p domain.Profile) error {
	previous, err := s.Load(ctx)
	if err != nil && !errors.Is(err, application.ErrNoProfile) {
		return err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := tx.UpsertProfile(p); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to write profile: %w", err)
	}

	if previous == nil || !previous.StartDate.Equal(p.StartDate) {
		if err := tx.RecordStartDate(p.UpdatedAt, p.StartDate); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record start date: %w", err)
		}
	}

	return tx.Commit()
}

// StartDateHistory returns every recorded start date, oldest first
func (s *Store) StartDateHistory(ctx context.Context) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT start_date FROM start_date_history ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		d, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt start date %q: %w", raw, err)
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}
