// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/baton/internal/ports/secondary"
)

// HandoffRepository implements secondary.HandoffRepository with SQLite.
// Handoffs are immutable - no Update or Delete operations.
type HandoffRepository struct {
	db *sql.DB
}

// NewHandoffRepository creates a new SQLite handoff repository.
func NewHandoffRepository(db *sql.DB) *HandoffRepository {
	return &HandoffRepository{db: db}
}

// Create persists a new handoff.
func (r *HandoffRepository) Create(ctx context.Context, handoff *secondary.HandoffRecord) error {
	var sessionID, blocked, snapshot sql.NullString

	if handoff.SessionID != "" {
		sessionID = sql.NullString{String: handoff.SessionID, Valid: true}
	}
	if handoff.Blocked != "" {
		blocked = sql.NullString{String: handoff.Blocked, Valid: true}
	}
	if handoff.StateSnapshot != "" {
		snapshot = sql.NullString{String: handoff.StateSnapshot, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO handoffs (id, session_id, format, prompt, summary, blocked, state_snapshot)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		handoff.ID, sessionID, handoff.Format, handoff.Prompt, handoff.Summary, blocked, snapshot,
	)
	if err != nil {
		return fmt.Errorf("failed to create handoff: %w", err)
	}

	return nil
}

const handoffColumns = `id, created_at, session_id, format, prompt, summary, blocked, state_snapshot`

// scanHandoff reads one handoff row from a row scanner.
func scanHandoff(scan func(dest ...any) error) (*secondary.HandoffRecord, error) {
	var (
		createdAt time.Time
		sessionID sql.NullString
		blocked   sql.NullString
		snapshot  sql.NullString
	)

	record := &secondary.HandoffRecord{}
	err := scan(&record.ID, &createdAt, &sessionID, &record.Format, &record.Prompt, &record.Summary, &blocked, &snapshot)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.SessionID = sessionID.String
	record.Blocked = blocked.String
	record.StateSnapshot = snapshot.String
	return record, nil
}

// GetByID retrieves a handoff by its ID.
func (r *HandoffRepository) GetByID(ctx context.Context, id string) (*secondary.HandoffRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+handoffColumns+` FROM handoffs WHERE id = ?`, id)

	record, err := scanHandoff(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("handoff %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get handoff: %w", err)
	}
	return record, nil
}

// GetLatest retrieves the most recent handoff.
func (r *HandoffRepository) GetLatest(ctx context.Context) (*secondary.HandoffRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+handoffColumns+` FROM handoffs ORDER BY created_at DESC, id DESC LIMIT 1`)

	record, err := scanHandoff(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no handoffs found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest handoff: %w", err)
	}
	return record, nil
}

// GetLatestForSession retrieves the most recent handoff for a session.
func (r *HandoffRepository) GetLatestForSession(ctx context.Context, sessionID string) (*secondary.HandoffRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+handoffColumns+` FROM handoffs WHERE session_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		sessionID)

	record, err := scanHandoff(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no handoffs found for session %s", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest handoff for session: %w", err)
	}
	return record, nil
}

// List retrieves handoffs with optional limit, newest first.
func (r *HandoffRepository) List(ctx context.Context, limit int) ([]*secondary.HandoffRecord, error) {
	query := `SELECT ` + handoffColumns + ` FROM handoffs ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list handoffs: %w", err)
	}
	defer rows.Close()

	var handoffs []*secondary.HandoffRecord
	for rows.Next() {
		record, err := scanHandoff(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan handoff: %w", err)
		}
		handoffs = append(handoffs, record)
	}

	return handoffs, rows.Err()
}

// GetNextID returns the next available handoff ID.
func (r *HandoffRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 4) AS INTEGER)), 0) FROM handoffs",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next handoff ID: %w", err)
	}

	return fmt.Sprintf("HO-%03d", maxID+1), nil
}

// Ensure HandoffRepository implements the interface
var _ secondary.HandoffRepository = (*HandoffRepository)(nil)
