package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xiaot623/support-assistant/internal/adapter/llm"
	"github.com/xiaot623/support-assistant/internal/domain"
)

// HandleTurn runs one chat turn: validate, upsert the session, read the
// bounded history, call the gateway, then persist the user/assistant pair.
//
// The history is read before the new user message is stored, so the context
// window never contains the in-flight utterance. Persisting both messages
// only after the gateway call succeeds means an LLM failure leaves the
// transcript untouched: the stored conversation never holds a user message
// without its assistant reply.
func (s *Service) HandleTurn(ctx context.Context, sessionID, message string) (*domain.TurnResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	message = strings.TrimSpace(message)
	if sessionID == "" {
		return nil, &domain.ValidationError{Field: "sessionId", Reason: "is required and must be a non-empty string"}
	}
	if message == "" {
		return nil, &domain.ValidationError{Field: "message", Reason: "is required and must be a non-empty string"}
	}

	if err := s.store.UpsertSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to upsert session: %w", err)
	}

	history, err := s.store.ReadHistory(ctx, sessionID, llm.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	result, err := s.gateway.Complete(ctx, history, message)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.AppendMessage(ctx, sessionID, domain.RoleUser, message, 0); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}
	if _, err := s.store.AppendMessage(ctx, sessionID, domain.RoleAssistant, result.Reply, result.TokensUsed); err != nil {
		return nil, fmt.Errorf("failed to store assistant message: %w", err)
	}

	if err := s.store.TouchSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to touch session: %w", err)
	}

	return result, nil
}
