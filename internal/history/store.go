// Package history persists confidence assessments in a SQLite database
// for audit and statistics. The confidence scorer itself never touches
// this store; commands and the tool server write through it when history
// is enabled in config.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/airisdev/airis-agent/internal/confidence"
)

//go:embed schema.sql
var schemaSQL string

// Assessment is one recorded confidence check.
type Assessment struct {
	ID              string
	Task            string
	Complexity      confidence.Complexity
	Score           float64
	Action          confidence.Action
	Signals         []string // Names of satisfied signals, checklist order
	TokensAllocated int
	CreatedAt       time.Time
}

// Store manages the SQLite database of assessment records.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (and initializes, if needed) the database at dbPath.
// The special path ":memory:" creates an in-memory store; otherwise the
// parent directory is created when missing.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.dbPath
}

// Record inserts one assessment. A missing ID or timestamp is filled in.
// Returns the record ID.
func (s *Store) Record(ctx context.Context, a Assessment) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	signals, err := json.Marshal(a.Signals)
	if err != nil {
		return "", fmt.Errorf("marshal signals: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments (id, task, complexity, score, action, signals, tokens_allocated, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Task, string(a.Complexity), a.Score, string(a.Action), string(signals),
		a.TokensAllocated, a.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("insert assessment: %w", err)
	}

	return a.ID, nil
}

// FromResponse builds an Assessment from a scored request/response pair.
func FromResponse(req confidence.Request, resp confidence.Response, tokens int) Assessment {
	complexity := req.Complexity
	if complexity == "" {
		complexity = confidence.ComplexityMedium
	}

	var satisfied []string
	for _, item := range resp.Checklist {
		if item.Satisfied {
			satisfied = append(satisfied, item.Name)
		}
	}

	return Assessment{
		Task:            req.Task,
		Complexity:      complexity,
		Score:           resp.Score,
		Action:          resp.Action,
		Signals:         satisfied,
		TokensAllocated: tokens,
	}
}

// Recent returns up to limit assessments, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Assessment, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, task, complexity, score, action, signals, tokens_allocated, created_at
		FROM assessments
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent assessments: %w", err)
	}
	defer rows.Close()

	var records []Assessment
	for rows.Next() {
		var a Assessment
		var complexity, action, signals string
		if err := rows.Scan(&a.ID, &a.Task, &complexity, &a.Score, &action, &signals,
			&a.TokensAllocated, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		a.Complexity = confidence.Complexity(complexity)
		a.Action = confidence.Action(action)
		if err := json.Unmarshal([]byte(signals), &a.Signals); err != nil {
			return nil, fmt.Errorf("unmarshal signals for %s: %w", a.ID, err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// CountsByAction returns how many recorded assessments fell into each
// action bucket.
func (s *Store) CountsByAction(ctx context.Context) (map[confidence.Action]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT action, COUNT(*) FROM assessments GROUP BY action`)
	if err != nil {
		return nil, fmt.Errorf("query action counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[confidence.Action]int)
	for rows.Next() {
		var action string
		var count int
		if err := rows.Scan(&action, &count); err != nil {
			return nil, fmt.Errorf("scan action count: %w", err)
		}
		counts[confidence.Action(action)] = count
	}

	return counts, rows.Err()
}

// Prune deletes assessments older than keepDays. keepDays <= 0 keeps
// everything.
func (s *Store) Prune(ctx context.Context, keepDays int) (int64, error) {
	if keepDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -keepDays)
	result, err := s.db.ExecContext(ctx, `DELETE FROM assessments WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune assessments: %w", err)
	}
	return result.RowsAffected()
}
