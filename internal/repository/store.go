// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/xiaot623/support-assistant/internal/domain"
)

// Store defines the interface for data persistence. All writes are durable
// before the call returns.
type Store interface {
	// Session operations
	UpsertSession(ctx context.Context, sessionID string) error
	TouchSession(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.SessionSummary, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Message operations
	AppendMessage(ctx context.Context, sessionID string, role domain.Role, content string, tokensUsed int) (int64, error)
	ReadHistory(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error)
	ReadFullHistory(ctx context.Context, sessionID string) ([]domain.Message, error)

	Close() error
}
