package store

import (
	"context"
	"database/sql"
	"fmt"
)

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	stmts := schemaSQLite
	if driver == DriverPostgres {
		stmts = schemaPostgres
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}

// Timestamps are unix milliseconds in both dialects. Every event row
// carries a value from the shared global_sequence.
var schemaSQLite = []string{
	`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		action TEXT NOT NULL,
		mode TEXT NOT NULL DEFAULT '',
		lesson_ids TEXT NOT NULL DEFAULT '',
		questions INTEGER NOT NULL DEFAULT 0,
		answered INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		accuracy INTEGER NOT NULL DEFAULT 0,
		avg_seconds INTEGER NOT NULL DEFAULT 0,
		duration_secs INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_session_events_session ON session_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		question_id TEXT NOT NULL,
		kanji_id TEXT NOT NULL,
		mode TEXT NOT NULL,
		prompt TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		selected_answer TEXT NOT NULL,
		correct BOOLEAN NOT NULL,
		time_ms INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_events_kanji ON answer_events (kanji_id)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL DEFAULT '',
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success BOOLEAN NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS mnemonics (
		kanji_id TEXT PRIMARY KEY,
		character TEXT NOT NULL,
		keyword TEXT NOT NULL,
		story TEXT NOT NULL,
		model TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
}

var schemaPostgres = []string{
	`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val BIGINT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		id BIGSERIAL PRIMARY KEY,
		sequence BIGINT NOT NULL UNIQUE,
		timestamp BIGINT NOT NULL,
		session_id TEXT NOT NULL,
		action TEXT NOT NULL,
		mode TEXT NOT NULL DEFAULT '',
		lesson_ids TEXT NOT NULL DEFAULT '',
		questions INTEGER NOT NULL DEFAULT 0,
		answered INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		accuracy INTEGER NOT NULL DEFAULT 0,
		avg_seconds INTEGER NOT NULL DEFAULT 0,
		duration_secs INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_session_events_session ON session_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id BIGSERIAL PRIMARY KEY,
		sequence BIGINT NOT NULL UNIQUE,
		timestamp BIGINT NOT NULL,
		session_id TEXT NOT NULL,
		question_id TEXT NOT NULL,
		kanji_id TEXT NOT NULL,
		mode TEXT NOT NULL,
		prompt TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		selected_answer TEXT NOT NULL,
		correct BOOLEAN NOT NULL,
		time_ms BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_events_kanji ON answer_events (kanji_id)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id BIGSERIAL PRIMARY KEY,
		sequence BIGINT NOT NULL UNIQUE,
		timestamp BIGINT NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL DEFAULT '',
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms BIGINT NOT NULL DEFAULT 0,
		success BOOLEAN NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS mnemonics (
		kanji_id TEXT PRIMARY KEY,
		character TEXT NOT NULL,
		keyword TEXT NOT NULL,
		story TEXT NOT NULL,
		model TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL
	)`,
}
