// Package llm wraps the external chat-completion provider.
package llm

import (
	"context"

	"github.com/xiaot623/support-assistant/internal/domain"
)

// HistoryWindow is the maximum number of stored messages passed to the
// provider as conversation context (5 user/assistant pairs).
const HistoryWindow = 10

// Gateway defines the interface for obtaining an assistant reply.
type Gateway interface {
	// Complete sends the system prompt, the bounded history, and the new
	// user utterance to the provider and returns the reply plus the total
	// token usage it reported. Never retries.
	Complete(ctx context.Context, history []domain.ChatMessage, userMessage string) (*domain.TurnResult, error)
}

// Ensure both implementations satisfy Gateway.
var (
	_ Gateway = (*Client)(nil)
	_ Gateway = (*MockClient)(nil)
)
