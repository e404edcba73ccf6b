// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// HandoffRepository defines the secondary port for handoff persistence.
// Handoffs are immutable - no Update or Delete operations.
type HandoffRepository interface {
	// Create persists a new handoff.
	Create(ctx context.Context, handoff *HandoffRecord) error

	// GetByID retrieves a handoff by its ID.
	GetByID(ctx context.Context, id string) (*HandoffRecord, error)

	// GetLatest retrieves the most recent handoff.
	GetLatest(ctx context.Context) (*HandoffRecord, error)

	// GetLatestForSession retrieves the most recent handoff for a session.
	GetLatestForSession(ctx context.Context, sessionID string) (*HandoffRecord, error)

	// List retrieves handoffs with optional limit.
	List(ctx context.Context, limit int) ([]*HandoffRecord, error)

	// GetNextID returns the next available handoff ID.
	GetNextID(ctx context.Context) (string, error)
}

// HandoffRecord represents a handoff as stored in persistence.
type HandoffRecord struct {
	ID            string
	CreatedAt     string
	SessionID     string // Empty string means null
	Format        string // "compact" or "detailed"
	Prompt        string // The rendered handoff document
	Summary       string
	Blocked       string // Empty string means null
	StateSnapshot string // JSON snapshot of the full session state, empty means null
}

// SessionRepository defines the secondary port for session persistence.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *SessionRecord) error

	// GetByID retrieves a session by its ID.
	GetByID(ctx context.Context, id string) (*SessionRecord, error)

	// AppendMessage adds a message to a session's transcript.
	AppendMessage(ctx context.Context, message *MessageRecord) error

	// RecentMessages retrieves the last limit messages for a session,
	// oldest first.
	RecentMessages(ctx context.Context, sessionID string, limit int) ([]*MessageRecord, error)
}

// SessionRecord represents a session as stored in persistence.
type SessionRecord struct {
	ID        string
	CreatedAt string
	Title     string
}

// MessageRecord represents a single transcript message.
type MessageRecord struct {
	SessionID string
	CreatedAt string
	Role      string // "user" or "assistant"
	Content   string
}
