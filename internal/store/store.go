// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists synthesized schedules in a local SQLite
// database, one row per schedule entry keyed by user. It stands in for
// the web application's persistence layer so the CLI and tests can
// round-trip the engine's output.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

const dbFile = "studyflow.db"

// timeFmt is the storage format for entry timestamps.
const timeFmt = time.RFC3339

// Store manages the schedule SQLite database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the schedule database at
// dataDir/studyflow.db, creating the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 200
	}

	s := &Store{db: db, dataDir: dataDir, maxResults: maxResults}

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
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			start TEXT NOT NULL,
			end TEXT NOT NULL,
			category TEXT,
			priority TEXT,
			course_code TEXT,
			description TEXT,
			resource TEXT,
			PRIMARY KEY (user_id, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_user ON entries(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_start ON entries(start)`,
		`CREATE TABLE IF NOT EXISTS syntheses (
			user_id TEXT PRIMARY KEY,
			entry_count INTEGER NOT NULL,
			saved_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveSchedule replaces a user's stored schedule with entries. The
// replace is transactional: either the whole new schedule lands or the
// old one stays.
func (s *Store) SaveSchedule(ctx context.Context, userID string, entries []types.ScheduleEntry) error {
	if userID == "" {
		return fmt.Errorf("user ID required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting old entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (id, user_id, kind, title, start, end, category, priority, course_code, description, resource)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		resourceJSON, _ := json.Marshal(e.Resource)
		_, err := stmt.ExecContext(ctx,
			e.ID, userID, string(e.Kind), e.Title,
			e.Start.UTC().Format(timeFmt), e.End.UTC().Format(timeFmt),
			e.Category, string(e.Priority), e.CourseCode, e.Description,
			string(resourceJSON),
		)
		if err != nil {
			return fmt.Errorf("inserting entry %s: %w", e.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO syntheses (user_id, entry_count, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET entry_count=excluded.entry_count, saved_at=excluded.saved_at`,
		userID, len(entries), time.Now().UTC().Format(timeFmt),
	)
	if err != nil {
		return fmt.Errorf("updating synthesis record: %w", err)
	}

	return tx.Commit()
}

// ListOptions holds filters for schedule queries.
type ListOptions struct {
	// UserID filters by user. Required for List.
	UserID string

	// Kind filters by entry kind. Empty matches all kinds.
	Kind types.EntryKind

	// CourseCode filters by course.
	CourseCode string

	// From and To bound Start. Zero values are open ends.
	From time.Time
	To   time.Time

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// ListEntries returns a user's stored entries ordered by start time.
func (s *Store) ListEntries(ctx context.Context, opts ListOptions) ([]types.ScheduleEntry, error) {
	if opts.UserID == "" {
		return nil, fmt.Errorf("user ID required")
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	query := `SELECT id, kind, title, start, end, category, priority, course_code, description, resource
		FROM entries WHERE user_id = ?`
	args := []any{opts.UserID}

	if opts.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(opts.Kind))
	}
	if opts.CourseCode != "" {
		query += ` AND course_code = ?`
		args = append(args, opts.CourseCode)
	}
	if !opts.From.IsZero() {
		query += ` AND start >= ?`
		args = append(args, opts.From.UTC().Format(timeFmt))
	}
	if !opts.To.IsZero() {
		query += ` AND start < ?`
		args = append(args, opts.To.UTC().Format(timeFmt))
	}

	query += ` ORDER BY start LIMIT ?`
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []types.ScheduleEntry
	for rows.Next() {
		var (
			e            types.ScheduleEntry
			kind         string
			startStr     string
			endStr       string
			priority     sql.NullString
			courseCode   sql.NullString
			description  sql.NullString
			resourceJSON sql.NullString
		)
		if err := rows.Scan(&e.ID, &kind, &e.Title, &startStr, &endStr,
			&e.Category, &priority, &courseCode, &description, &resourceJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		e.Kind = types.EntryKind(kind)
		e.Start, _ = time.Parse(timeFmt, startStr)
		e.End, _ = time.Parse(timeFmt, endStr)
		if priority.Valid {
			e.Priority = types.Priority(priority.String)
		}
		if courseCode.Valid {
			e.CourseCode = courseCode.String
		}
		if description.Valid {
			e.Description = description.String
		}
		if resourceJSON.Valid {
			json.Unmarshal([]byte(resourceJSON.String), &e.Resource)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// exportFile is the on-disk shape of an exported schedule.
type exportFile struct {
	UserID     string                `json:"user_id" yaml:"user_id"`
	ExportedAt time.Time             `json:"exported_at" yaml:"exported_at"`
	Entries    []types.ScheduleEntry `json:"entries" yaml:"entries"`
}

// ExportYAML writes a user's schedule to dataDir/exports/[user].yaml and
// returns the written path.
func (s *Store) ExportYAML(ctx context.Context, opts ListOptions) (string, error) {
	return s.export(ctx, opts, "yaml")
}

// ExportJSON writes a user's schedule to dataDir/exports/[user].json and
// returns the written path.
func (s *Store) ExportJSON(ctx context.Context, opts ListOptions) (string, error) {
	return s.export(ctx, opts, "json")
}

func (s *Store) export(ctx context.Context, opts ListOptions, format string) (string, error) {
	entries, err := s.ListEntries(ctx, opts)
	if err != nil {
		return "", err
	}

	exportDir := filepath.Join(s.dataDir, "exports")
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	out := exportFile{
		UserID:     opts.UserID,
		ExportedAt: time.Now().UTC(),
		Entries:    entries,
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(out)
	case "json":
		data, err = json.MarshalIndent(out, "", "  ")
	default:
		return "", fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}

	path := filepath.Join(exportDir, opts.UserID+"."+format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// Summary describes a user's stored schedule.
type Summary struct {
	UserID     string
	EntryCount int
	SavedAt    time.Time
}

// Summaries lists every stored synthesis, most recent first.
func (s *Store) Summaries(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, entry_count, saved_at FROM syntheses ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying syntheses: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			sum     Summary
			savedAt string
		)
		if err := rows.Scan(&sum.UserID, &sum.EntryCount, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		sum.SavedAt, _ = time.Parse(timeFmt, savedAt)
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}
