package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLiteStore persists conversation contexts as JSON blobs, one row per
// conversation.
type SQLiteStore struct {
	db *sql.DB
}

const sessionSchema = `
CREATE TABLE IF NOT EXISTS chat_sessions (
	conversation_id TEXT PRIMARY KEY,
	context_json    TEXT NOT NULL,
	updated_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// NewSQLiteStore initializes the session table on the given database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.Exec(sessionSchema); err != nil {
		return nil, fmt.Errorf("failed to init session schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load returns the stored context, or an empty one for unknown
// conversations. A row that fails to decode resets to empty.
func (s *SQLiteStore) Load(ctx context.Context, conversationID string) (*Context, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT context_json FROM chat_sessions WHERE conversation_id = ?`,
		conversationID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return &Context{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sc Context
	if err := json.Unmarshal([]byte(raw), &sc); err != nil {
		return &Context{}, nil
	}
	return &sc, nil
}

// Save upserts the context for the conversation.
func (s *SQLiteStore) Save(ctx context.Context, conversationID string, sc *Context) error {
	raw, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chat_sessions (conversation_id, context_json, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(conversation_id) DO UPDATE SET
			context_json = excluded.context_json,
			updated_at = CURRENT_TIMESTAMP`,
		conversationID, string(raw))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
