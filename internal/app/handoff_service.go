package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/baton/internal/core/handoff"
	"github.com/example/baton/internal/ports/primary"
	"github.com/example/baton/internal/ports/secondary"
)

// HandoffServiceImpl implements the HandoffService interface.
// Handoffs are immutable - no update or delete operations.
type HandoffServiceImpl struct {
	handoffRepo secondary.HandoffRepository
}

// NewHandoffService creates a new HandoffService with injected dependencies.
func NewHandoffService(handoffRepo secondary.HandoffRepository) *HandoffServiceImpl {
	return &HandoffServiceImpl{
		handoffRepo: handoffRepo,
	}
}

// CreateHandoff renders the handoff prompt from the session state and
// persists it alongside a JSON snapshot of the state. The stored prompt is
// the contract: reads return the text that was delivered, never a re-render.
func (s *HandoffServiceImpl) CreateHandoff(ctx context.Context, req primary.CreateHandoffRequest) (*primary.CreateHandoffResponse, error) {
	nextID, err := s.handoffRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate handoff ID: %w", err)
	}

	prompt := handoff.RenderPrompt(req.State, req.Format)

	snapshot, err := json.Marshal(req.State)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot session state: %w", err)
	}

	record := &secondary.HandoffRecord{
		ID:            nextID,
		SessionID:     req.State.PreviousSessionID,
		Format:        string(req.Format),
		Prompt:        prompt,
		Summary:       req.State.SummaryOrTask,
		Blocked:       req.State.Blocked,
		StateSnapshot: string(snapshot),
	}

	if err := s.handoffRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create handoff: %w", err)
	}

	created, err := s.handoffRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created handoff: %w", err)
	}

	return &primary.CreateHandoffResponse{
		HandoffID: created.ID,
		Prompt:    created.Prompt,
		Handoff:   s.recordToHandoff(created),
	}, nil
}

// GetHandoff retrieves a handoff by ID.
func (s *HandoffServiceImpl) GetHandoff(ctx context.Context, handoffID string) (*primary.Handoff, error) {
	record, err := s.handoffRepo.GetByID(ctx, handoffID)
	if err != nil {
		return nil, err
	}
	return s.recordToHandoff(record), nil
}

// GetLatestHandoff retrieves the most recent handoff.
func (s *HandoffServiceImpl) GetLatestHandoff(ctx context.Context) (*primary.Handoff, error) {
	record, err := s.handoffRepo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	return s.recordToHandoff(record), nil
}

// GetLatestHandoffForSession retrieves the most recent handoff for a session.
func (s *HandoffServiceImpl) GetLatestHandoffForSession(ctx context.Context, sessionID string) (*primary.Handoff, error) {
	record, err := s.handoffRepo.GetLatestForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.recordToHandoff(record), nil
}

// ListHandoffs lists handoffs with optional limit.
func (s *HandoffServiceImpl) ListHandoffs(ctx context.Context, limit int) ([]*primary.Handoff, error) {
	records, err := s.handoffRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list handoffs: %w", err)
	}

	handoffs := make([]*primary.Handoff, len(records))
	for i, r := range records {
		handoffs[i] = s.recordToHandoff(r)
	}
	return handoffs, nil
}

func (s *HandoffServiceImpl) recordToHandoff(r *secondary.HandoffRecord) *primary.Handoff {
	return &primary.Handoff{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt,
		SessionID:     r.SessionID,
		Format:        r.Format,
		Prompt:        r.Prompt,
		Summary:       r.Summary,
		Blocked:       r.Blocked,
		StateSnapshot: r.StateSnapshot,
	}
}

// Ensure HandoffServiceImpl implements the interface
var _ primary.HandoffService = (*HandoffServiceImpl)(nil)
