// Package history provides SQLite-backed storage of pipeline run outcomes so
// repeated publishing runs stay auditable.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"toolforge/pkg/logx"
)

// Stage names recorded per tool.
const (
	StageGenerate = "generate"
	StageValidate = "validate"
	StageGit      = "git"
	StageGitHub   = "github"
)

// Stage outcome statuses.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	output_dir  TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT
);

CREATE TABLE IF NOT EXISTS stage_results (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	tool_id     TEXT NOT NULL,
	stage       TEXT NOT NULL,
	status      TEXT NOT NULL,
	detail      TEXT NOT NULL DEFAULT '',
	recorded_at TEXT NOT NULL,
	PRIMARY KEY (run_id, tool_id, stage)
);
`

// StageResult is one recorded per-tool stage outcome.
type StageResult struct {
	RunID      string
	ToolID     string
	Stage      string
	Status     string
	Detail     string
	RecordedAt time.Time
}

// Store is a handle on the run-history database.
type Store struct {
	db     *sql.DB
	logger *logx.Logger
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
		dbPath,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	logger := logx.NewLogger("history")
	logger.Debug("history database ready: %s", dbPath)
	return &Store{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records the start of a pipeline run.
func (s *Store) BeginRun(runID, outputDir string) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, output_dir, started_at) VALUES (?, ?, ?)`,
		runID, outputDir, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record run start: %w", err)
	}
	return nil
}

// FinishRun marks a run as completed.
func (s *Store) FinishRun(runID string) error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), runID,
	)
	if err != nil {
		return fmt.Errorf("failed to record run finish: %w", err)
	}
	return nil
}

// RecordStage upserts one per-tool stage outcome for a run.
func (s *Store) RecordStage(runID, toolID, stage, status, detail string) error {
	_, err := s.db.Exec(
		`INSERT INTO stage_results (run_id, tool_id, stage, status, detail, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (run_id, tool_id, stage)
		 DO UPDATE SET status = excluded.status, detail = excluded.detail, recorded_at = excluded.recorded_at`,
		runID, toolID, stage, status, detail, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record stage result: %w", err)
	}
	return nil
}

// RunStages returns the recorded stage outcomes for a run, ordered by tool
// and stage for stable reporting.
func (s *Store) RunStages(runID string) ([]StageResult, error) {
	rows, err := s.db.Query(
		`SELECT run_id, tool_id, stage, status, detail, recorded_at
		 FROM stage_results WHERE run_id = ? ORDER BY tool_id, stage`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stage results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []StageResult
	for rows.Next() {
		var sr StageResult
		var recordedAt string
		if err := rows.Scan(&sr.RunID, &sr.ToolID, &sr.Stage, &sr.Status, &sr.Detail, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stage result: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339, recordedAt); parseErr == nil {
			sr.RecordedAt = ts
		}
		results = append(results, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stage results: %w", err)
	}
	return results, nil
}
