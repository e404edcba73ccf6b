package primary

import "context"

// SessionService defines the primary port for session registry operations.
// It backs the read_session affordance referenced in rendered handoff
// footers: the successor session fetches a truncated tail of its
// predecessor's transcript on demand.
type SessionService interface {
	// StartSession registers a new session and returns its ID.
	StartSession(ctx context.Context, title string) (*Session, error)

	// AppendMessage records a transcript message for a session.
	AppendMessage(ctx context.Context, sessionID, role, content string) error

	// ReadSession returns the last messages of a session, oldest first,
	// each capped at a fixed length.
	ReadSession(ctx context.Context, req ReadSessionRequest) (*ReadSessionResponse, error)
}

// ReadSessionRequest contains parameters for reading a session transcript.
type ReadSessionRequest struct {
	SessionID string
	Limit     int // 0 means the default limit
}

// ReadSessionResponse contains the truncated transcript tail.
type ReadSessionResponse struct {
	Session  *Session
	Messages []Message
}

// Session represents a session entity at the port boundary.
type Session struct {
	ID        string
	CreatedAt string
	Title     string
}

// Message represents a transcript message at the port boundary.
type Message struct {
	Role      string
	Content   string
	CreatedAt string
	Truncated bool
}
