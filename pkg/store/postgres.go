// Package store persists extraction records to Postgres for downstream
// querying.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coolbeans/lexstruct/pkg/schema"
)

// DB wraps the connection pool for the extraction record store.
type DB struct {
	Pool *pgxpool.Pool
}

// NewDB connects to Postgres and verifies the connection.
func NewDB(ctx context.Context, connStr string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{Pool: pool}, nil
}

// Initialize sets up the record table and its indices.
func (db *DB) Initialize(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS legal_records (
            id SERIAL PRIMARY KEY,
            run_id TEXT NOT NULL,
            kind TEXT NOT NULL,
            law_name TEXT,
            article_number TEXT,
            content TEXT,
            summary TEXT,
            keywords TEXT[],
            raw JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create legal_records table: %w", err)
	}

	_, err = db.Pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS legal_records_run_idx ON legal_records (run_id);
		CREATE INDEX IF NOT EXISTS legal_records_article_idx ON legal_records (law_name, article_number);
	`)
	if err != nil {
		return fmt.Errorf("failed to create indices: %w", err)
	}
	return nil
}

// InsertRecords stores the valid records of a run and returns how many were
// written. Error placeholders are counted but not stored.
func (db *DB) InsertRecords(ctx context.Context, runID string, records []schema.Record) (int, error) {
	inserted := 0
	for _, r := range records {
		if r.IsError() {
			continue
		}
		raw, err := json.Marshal(r)
		if err != nil {
			return inserted, fmt.Errorf("failed to marshal record: %w", err)
		}
		_, err = db.Pool.Exec(ctx, `
            INSERT INTO legal_records (run_id, kind, law_name, article_number, content, summary, keywords, raw)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        `,
			runID,
			string(r.Kind()),
			r.StringField("law_name"),
			r.StringField("article_number"),
			r.StringField("content"),
			r.StringField("summary"),
			r.StringsField("keywords"),
			raw)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert record: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

// CountByRun reports how many records a run persisted.
func (db *DB) CountByRun(ctx context.Context, runID string) (int, error) {
	var n int
	err := db.Pool.QueryRow(ctx,
		`SELECT count(*) FROM legal_records WHERE run_id = $1`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}
