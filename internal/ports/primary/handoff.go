package primary

import (
	"context"

	"github.com/example/baton/internal/core/handoff"
)

// HandoffService defines the primary port for handoff operations.
// Handoffs are immutable - no update or delete operations.
type HandoffService interface {
	// CreateHandoff renders a handoff prompt from the session state and
	// persists it.
	CreateHandoff(ctx context.Context, req CreateHandoffRequest) (*CreateHandoffResponse, error)

	// GetHandoff retrieves a handoff by ID.
	GetHandoff(ctx context.Context, handoffID string) (*Handoff, error)

	// GetLatestHandoff retrieves the most recent handoff.
	GetLatestHandoff(ctx context.Context) (*Handoff, error)

	// GetLatestHandoffForSession retrieves the most recent handoff for a session.
	GetLatestHandoffForSession(ctx context.Context, sessionID string) (*Handoff, error)

	// ListHandoffs lists handoffs with optional limit.
	ListHandoffs(ctx context.Context, limit int) ([]*Handoff, error)
}

// CreateHandoffRequest contains parameters for creating a handoff.
type CreateHandoffRequest struct {
	State  handoff.SessionState
	Format handoff.Format
}

// CreateHandoffResponse contains the result of creating a handoff.
type CreateHandoffResponse struct {
	HandoffID string
	Prompt    string
	Handoff   *Handoff
}

// Handoff represents a handoff entity at the port boundary.
type Handoff struct {
	ID            string
	CreatedAt     string
	SessionID     string
	Format        string
	Prompt        string
	Summary       string
	Blocked       string
	StateSnapshot string
}
