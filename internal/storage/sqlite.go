// Package storage reads message records out of a SQLite message store. The
// engine only needs an ordered, finite slice of {content, sender, timestamp}
// rows; everything else about the store is someone else's concern.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/spacesedan/texture/internal/models"
)

const DefaultScanLimit = 100

type MessageStore struct {
	db   *sql.DB
	path string
}

// OpenMessageStore opens an existing message store. A missing file is
// reported before any query runs.
func OpenMessageStore(path string) (*MessageStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("message store not found: %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open message store: %w", err)
	}

	return &MessageStore{db: db, path: path}, nil
}

// CreateMessageStore opens (creating if needed) a store and ensures the
// communication_logs schema exists.
func CreateMessageStore(path string) (*MessageStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open message store: %w", err)
	}

	store := &MessageStore{db: db, path: path}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *MessageStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS communication_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sender TEXT NOT NULL,
			content TEXT NOT NULL,
			timestamp TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create communication_logs table: %w", err)
	}
	return nil
}

func (s *MessageStore) Close() error {
	return s.db.Close()
}

// Path returns the store's file path.
func (s *MessageStore) Path() string { return s.path }

// InsertMessage appends one message row.
func (s *MessageStore) InsertMessage(ctx context.Context, msg models.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO communication_logs (sender, content, timestamp) VALUES (?, ?, ?)`,
		msg.Sender, msg.Content, msg.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// RecentMessages returns up to limit rows, newest first, optionally filtered
// by sender. A non-positive limit falls back to DefaultScanLimit.
func (s *MessageStore) RecentMessages(ctx context.Context, limit int, sender string) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultScanLimit
	}

	var (
		rows *sql.Rows
		err  error
	)
	if sender != "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, sender, content, timestamp
			FROM communication_logs
			WHERE sender = ?
			ORDER BY timestamp DESC
			LIMIT ?`, sender, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, sender, content, timestamp
			FROM communication_logs
			ORDER BY timestamp DESC
			LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.Sender, &msg.Content, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read message rows: %w", err)
	}

	return messages, nil
}
