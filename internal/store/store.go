// Package store persists extraction reports in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roomscan/pkg/dimension"
	"roomscan/pkg/report"
	"roomscan/pkg/scan"
)

// ErrNotFound is returned when no report exists under the requested id.
var ErrNotFound = errors.New("report not found")

// Report is one persisted extraction: the snapshot it ran on, the derived
// dimensions and the transport payload.
type Report struct {
	ID         string                   `json:"id"`
	CreatedAt  time.Time                `json:"created_at"`
	Snapshot   scan.Snapshot            `json:"snapshot"`
	Dimensions dimension.RoomDimensions `json:"dimensions"`
	Payload    report.Payload           `json:"payload"`
}

// Store is the SQLite-backed report repository.
type Store struct {
	db *sql.DB
}

// New wraps an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the schema migration file.
func (s *Store) Init(migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := s.db.Exec(string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// Save stores a report. The id must be unique.
func (s *Store) Save(ctx context.Context, r Report) error {
	snapshotJSON, err := json.Marshal(r.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	dimensionsJSON, err := json.Marshal(r.Dimensions)
	if err != nil {
		return fmt.Errorf("marshal dimensions: %w", err)
	}
	payloadJSON, err := json.Marshal(r.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO room_reports (id, created_at, snapshot, dimensions, payload)
        VALUES (?, ?, ?, ?, ?)
    `, r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano), string(snapshotJSON), string(dimensionsJSON), string(payloadJSON))
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// Get returns the report stored under id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Report, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, created_at, snapshot, dimensions, payload
        FROM room_reports
        WHERE id = ?
    `, id)

	var (
		r              Report
		createdAt      string
		snapshotJSON   string
		dimensionsJSON string
		payloadJSON    string
	)
	if err := row.Scan(&r.ID, &createdAt, &snapshotJSON, &dimensionsJSON, &payloadJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	r.CreatedAt = t

	if err := json.Unmarshal([]byte(snapshotJSON), &r.Snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(dimensionsJSON), &r.Dimensions); err != nil {
		return nil, fmt.Errorf("unmarshal dimensions: %w", err)
	}
	if err := json.Unmarshal([]byte(payloadJSON), &r.Payload); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return &r, nil
}

// List returns report ids and creation times, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, created_at
        FROM room_reports
        ORDER BY created_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReportSummary
	for rows.Next() {
		var (
			summary   ReportSummary
			createdAt string
		)
		if err := rows.Scan(&summary.ID, &createdAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			summary.CreatedAt = t
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

// ReportSummary is a row of the report listing.
type ReportSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Open opens (creating if needed) the SQLite database at dbPath.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
