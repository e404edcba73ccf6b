package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/baton/internal/ports/primary"
	"github.com/example/baton/internal/ports/secondary"
)

const (
	// DefaultReadLimit is the number of messages ReadSession returns when
	// the request does not specify one.
	DefaultReadLimit = 20

	// MessageCap is the maximum rune length of a returned message before
	// truncation.
	MessageCap = 500

	// truncationMarker is appended to messages cut at MessageCap.
	truncationMarker = "…"
)

// SessionServiceImpl implements the SessionService interface.
type SessionServiceImpl struct {
	sessionRepo secondary.SessionRepository
}

// NewSessionService creates a new SessionService with injected dependencies.
func NewSessionService(sessionRepo secondary.SessionRepository) *SessionServiceImpl {
	return &SessionServiceImpl{
		sessionRepo: sessionRepo,
	}
}

// StartSession registers a new session under a fresh ses_ ID.
func (s *SessionServiceImpl) StartSession(ctx context.Context, title string) (*primary.Session, error) {
	title = strings.TrimSpace(title)

	record := &secondary.SessionRecord{
		ID:    "ses_" + uuid.NewString(),
		Title: title,
	}
	if err := s.sessionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	created, err := s.sessionRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created session: %w", err)
	}
	return recordToSession(created), nil
}

// AppendMessage records a transcript message for a session.
func (s *SessionServiceImpl) AppendMessage(ctx context.Context, sessionID, role, content string) error {
	if content == "" {
		return fmt.Errorf("message content cannot be empty")
	}
	// Validate the session exists before appending
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return err
	}

	message := &secondary.MessageRecord{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}
	if err := s.sessionRepo.AppendMessage(ctx, message); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ReadSession returns the last messages of a session, oldest first, each
// capped at MessageCap runes with a truncation marker.
func (s *SessionServiceImpl) ReadSession(ctx context.Context, req primary.ReadSessionRequest) (*primary.ReadSessionResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultReadLimit
	}

	records, err := s.sessionRepo.RecentMessages(ctx, req.SessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read session messages: %w", err)
	}

	messages := make([]primary.Message, len(records))
	for i, r := range records {
		content, truncated := capMessage(r.Content)
		messages[i] = primary.Message{
			Role:      r.Role,
			Content:   content,
			CreatedAt: r.CreatedAt,
			Truncated: truncated,
		}
	}

	return &primary.ReadSessionResponse{
		Session:  recordToSession(session),
		Messages: messages,
	}, nil
}

// capMessage truncates content to MessageCap runes, appending the marker
// when anything was cut.
func capMessage(content string) (string, bool) {
	runes := []rune(content)
	if len(runes) <= MessageCap {
		return content, false
	}
	return string(runes[:MessageCap]) + truncationMarker, true
}

func recordToSession(r *secondary.SessionRecord) *primary.Session {
	return &primary.Session{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Title:     r.Title,
	}
}

// Ensure SessionServiceImpl implements the interface
var _ primary.SessionService = (*SessionServiceImpl)(nil)
