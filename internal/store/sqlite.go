// Package store provides persistent classifier.Cache implementations.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/joelkehle/assistant-desk/internal/classifier"
)

// SQLiteCache persists classification results across restarts. Rows are
// written once per message id; a later Set for the same id replaces the row.
type SQLiteCache struct {
	db    *sqlx.DB
	clock func() time.Time
}

// timeLayout is fixed-width so classified_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS classifications (
	message_id        TEXT PRIMARY KEY,
	requires_response TEXT NOT NULL,
	confidence        TEXT NOT NULL,
	reason            TEXT NOT NULL DEFAULT '',
	method            TEXT NOT NULL,
	classified_at     TEXT NOT NULL
);
`

type classificationRow struct {
	MessageID        string `db:"message_id"`
	RequiresResponse string `db:"requires_response"`
	Confidence       string `db:"confidence"`
	Reason           string `db:"reason"`
	Method           string `db:"method"`
	ClassifiedAt     string `db:"classified_at"`
}

func (r classificationRow) result() classifier.Result {
	return classifier.Result{
		RequiresResponse: classifier.RequiresResponse(r.RequiresResponse),
		Confidence:       classifier.Confidence(r.Confidence),
		Reason:           r.Reason,
		Method:           classifier.Method(r.Method),
	}
}

func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteCache{db: db, clock: time.Now}, nil
}

func (s *SQLiteCache) Close() error {
	return s.db.Close()
}

func (s *SQLiteCache) Get(ctx context.Context, id string) (classifier.Result, bool, error) {
	var row classificationRow
	err := s.db.GetContext(ctx, &row, `SELECT message_id, requires_response, confidence, reason, method, classified_at
		FROM classifications WHERE message_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return classifier.Result{}, false, nil
	}
	if err != nil {
		return classifier.Result{}, false, fmt.Errorf("get classification %s: %w", id, err)
	}
	return row.result(), true, nil
}

func (s *SQLiteCache) Set(ctx context.Context, id string, r classifier.Result) error {
	row := classificationRow{
		MessageID:        id,
		RequiresResponse: string(r.RequiresResponse),
		Confidence:       string(r.Confidence),
		Reason:           r.Reason,
		Method:           string(r.Method),
		ClassifiedAt:     timeToString(s.clock()),
	}
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO classifications
		(message_id, requires_response, confidence, reason, method, classified_at)
		VALUES (:message_id, :requires_response, :confidence, :reason, :method, :classified_at)
		ON CONFLICT(message_id) DO UPDATE SET
			requires_response = excluded.requires_response,
			confidence = excluded.confidence,
			reason = excluded.reason,
			method = excluded.method,
			classified_at = excluded.classified_at`, row)
	if err != nil {
		return fmt.Errorf("save classification %s: %w", id, err)
	}
	return nil
}

// Delete drops a cached result so the next Classify recomputes it.
func (s *SQLiteCache) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM classifications WHERE message_id = ?", id); err != nil {
		return fmt.Errorf("delete classification %s: %w", id, err)
	}
	return nil
}

// Reset removes every cached result.
func (s *SQLiteCache) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM classifications"); err != nil {
		return fmt.Errorf("reset classifications: %w", err)
	}
	return nil
}

// ClassifiedSince lists ids classified at or after t, oldest first.
func (s *SQLiteCache) ClassifiedSince(ctx context.Context, t time.Time) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, `SELECT message_id FROM classifications
		WHERE classified_at >= ? ORDER BY classified_at, message_id`, timeToString(t))
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	return ids, nil
}

func (s *SQLiteCache) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM classifications"); err != nil {
		return 0, fmt.Errorf("count classifications: %w", err)
	}
	return n, nil
}

func timeToString(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
