// Package store handles SQLite persistence for analysis snapshots.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/textscope/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for snapshot data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			label TEXT NOT NULL,
			characters INTEGER NOT NULL,
			words INTEGER NOT NULL,
			sentences INTEGER NOT NULL,
			paragraphs INTEGER NOT NULL,
			reading_ease REAL NOT NULL,
			kincaid_grade REAL NOT NULL,
			level TEXT NOT NULL,
			stats_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSnapshot stores one analysis summary and returns its id. The full
// record is kept as JSON next to the queryable summary columns.
func (s *Store) InsertSnapshot(ctx context.Context, createdAt time.Time, label string, stats model.TextStatistics) (int64, error) {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return 0, fmt.Errorf("failed to encode stats: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (created_at, label, characters, words, sentences, paragraphs, reading_ease, kincaid_grade, level, stats_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt.Format(time.RFC3339Nano),
		label,
		stats.Characters,
		stats.Words,
		stats.Sentences,
		stats.Paragraphs,
		stats.FleschReadingEase,
		stats.FleschKincaidGrade,
		stats.ReadabilityLevel,
		string(statsJSON),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSnapshots returns snapshots matching the filter, oldest first.
func (s *Store) ListSnapshots(ctx context.Context, filter model.HistoryFilter) ([]model.Snapshot, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	if filter.Label != "" {
		clauses = append(clauses, "label = ?")
		args = append(args, filter.Label)
	}
	query := fmt.Sprintf(`SELECT id, created_at, label, stats_json
		FROM snapshots
		WHERE %s
		ORDER BY created_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var snapshots []model.Snapshot
	for rows.Next() {
		var snap model.Snapshot
		var createdAt, statsJSON string
		if err := rows.Scan(&snap.ID, &createdAt, &snap.Label, &statsJSON); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		snap.CreatedAt = parsed
		if err := json.Unmarshal([]byte(statsJSON), &snap.Stats); err != nil {
			return nil, fmt.Errorf("failed to decode stats for snapshot %d: %w", snap.ID, err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(snapshots) > filter.Last {
		snapshots = snapshots[len(snapshots)-filter.Last:]
	}
	return snapshots, nil
}

// GetSnapshot loads a single snapshot by id.
func (s *Store) GetSnapshot(ctx context.Context, id int64) (model.Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, label, stats_json FROM snapshots WHERE id = ?`, id)
	var snap model.Snapshot
	var createdAt, statsJSON string
	if err := row.Scan(&snap.ID, &createdAt, &snap.Label, &statsJSON); err != nil {
		return model.Snapshot{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Snapshot{}, err
	}
	snap.CreatedAt = parsed
	if err := json.Unmarshal([]byte(statsJSON), &snap.Stats); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode stats: %w", err)
	}
	return snap, nil
}
