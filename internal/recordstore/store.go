// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recordstore keeps merged records in a local SQLite database so
// repeated parse runs can tell new, changed and unchanged records apart,
// and exports the stored records as YAML or JSON.
package recordstore

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

const dbFile = "records.db"

// ErrNotFound is returned by Get for an unknown (kind, id).
var ErrNotFound = errors.New("record not found")

// Outcome reports what Put did with a record.
type Outcome string

const (
	Inserted Outcome = "inserted"
	Updated  Outcome = "updated"
	Skipped  Outcome = "skipped"
)

// Record is one stored merged record.
type Record struct {
	Kind        types.Kind
	ID          string
	URI         string
	Fingerprint string
	Payload     json.RawMessage
	ParsedAt    time.Time
	RunID       string
}

// Store manages the records database.
type Store struct {
	db  *sql.DB
	dir string
	now func() time.Time
}

// NewRunID returns a fresh identifier for one CLI run.
func NewRunID() string {
	return uuid.NewString()
}

// Open opens or creates cfg.Dir/records.db and its schema.
func Open(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(cfg.Dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: cfg.Dir, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			kind TEXT NOT NULL,
			id TEXT NOT NULL,
			uri TEXT,
			fingerprint TEXT NOT NULL,
			payload TEXT NOT NULL,
			parsed_at TEXT NOT NULL,
			run_id TEXT NOT NULL,
			PRIMARY KEY (kind, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Fingerprint returns the hex SHA-256 of payload.
func Fingerprint(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Put stores rec under (kind, id). A record whose JSON encoding matches
// the stored one is left untouched and reported as Skipped.
func (s *Store) Put(ctx context.Context, kind types.Kind, id, uri string, rec any, runID string) (Outcome, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshaling %s %s: %w", kind, id, err)
	}
	fp := Fingerprint(payload)

	var stored string
	err = s.db.QueryRowContext(ctx,
		`SELECT fingerprint FROM records WHERE kind = ? AND id = ?`, string(kind), id,
	).Scan(&stored)
	switch {
	case err == nil && stored == fp:
		return Skipped, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("reading %s %s: %w", kind, id, err)
	}
	outcome := Inserted
	if err == nil {
		outcome = Updated
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (kind, id, uri, fingerprint, payload, parsed_at, run_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(kind, id) DO UPDATE SET
			uri=excluded.uri, fingerprint=excluded.fingerprint, payload=excluded.payload,
			parsed_at=excluded.parsed_at, run_id=excluded.run_id`,
		string(kind), id, uri, fp, string(payload),
		s.now().UTC().Format(time.RFC3339Nano), runID,
	)
	if err != nil {
		return "", fmt.Errorf("upserting %s %s: %w", kind, id, err)
	}
	return outcome, nil
}

// Get returns the stored record for (kind, id).
func (s *Store) Get(ctx context.Context, kind types.Kind, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT kind, id, uri, fingerprint, payload, parsed_at, run_id
		 FROM records WHERE kind = ? AND id = ?`, string(kind), id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// List returns the stored records of kind ordered by id, or every record
// ordered by kind and id when kind is empty.
func (s *Store) List(ctx context.Context, kind types.Kind) ([]Record, error) {
	query := `SELECT kind, id, uri, fingerprint, payload, parsed_at, run_id FROM records`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY kind, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		r        Record
		kind     string
		uri      sql.NullString
		payload  string
		parsedAt string
	)
	if err := sc.Scan(&kind, &r.ID, &uri, &r.Fingerprint, &payload, &parsedAt, &r.RunID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	r.Kind = types.Kind(kind)
	r.URI = uri.String
	r.Payload = json.RawMessage(payload)
	t, err := time.Parse(time.RFC3339Nano, parsedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing parsed_at of %s %s: %w", kind, r.ID, err)
	}
	r.ParsedAt = t
	return &r, nil
}
