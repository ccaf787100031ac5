package service

import (
	"context"
	"fmt"

	"github.com/xiaot623/support-assistant/internal/domain"
)

// ListSessions returns all sessions with message counts, most recently
// updated first.
func (s *Service) ListSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// GetConversation returns the full transcript of a session in ascending id
// order. Unknown sessions yield domain.ErrSessionNotFound.
func (s *Service) GetConversation(ctx context.Context, sessionID string) (*domain.Conversation, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}

	messages, err := s.store.ReadFullHistory(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return &domain.Conversation{
		SessionID: sessionID,
		Messages:  messages,
	}, nil
}
