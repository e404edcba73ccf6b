package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/baton/internal/ports/secondary"
)

// SessionRepository implements secondary.SessionRepository with SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite session repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a new session.
func (r *SessionRepository) Create(ctx context.Context, session *secondary.SessionRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, title) VALUES (?, ?)`,
		session.ID, session.Title,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*secondary.SessionRecord, error) {
	var createdAt time.Time

	record := &secondary.SessionRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, created_at FROM sessions WHERE id = ?`, id,
	).Scan(&record.ID, &record.Title, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// AppendMessage adds a message to a session's transcript.
func (r *SessionRepository) AppendMessage(ctx context.Context, message *secondary.MessageRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_messages (session_id, role, content) VALUES (?, ?, ?)`,
		message.SessionID, message.Role, message.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// RecentMessages retrieves the last limit messages for a session, oldest
// first. The tail is selected newest-first then reversed so the caller
// always sees chronological order.
func (r *SessionRepository) RecentMessages(ctx context.Context, sessionID string, limit int) ([]*secondary.MessageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, role, content, created_at
		 FROM session_messages WHERE session_id = ?
		 ORDER BY id DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []*secondary.MessageRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.MessageRecord{}
		if err := rows.Scan(&record.SessionID, &record.Role, &record.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		messages = append(messages, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// Ensure SessionRepository implements the interface
var _ secondary.SessionRepository = (*SessionRepository)(nil)
