package llm

import (
	"context"
	"fmt"

	"github.com/xiaot623/support-assistant/internal/domain"
)

// MockClient is a Gateway implementation for running without a provider.
type MockClient struct{}

// NewMockClient creates a new mock gateway.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete returns a canned response that echoes the question, with a
// deterministic token estimate so downstream accounting stays exercised.
func (m *MockClient) Complete(ctx context.Context, history []domain.ChatMessage, userMessage string) (*domain.TurnResult, error) {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	promptChars := len(userMessage)
	for _, msg := range history {
		promptChars += len(msg.Content)
	}

	reply := fmt.Sprintf("[mock] I received your question: %q. The conversation has %d prior messages.", userMessage, len(history))
	return &domain.TurnResult{
		Reply:      reply,
		TokensUsed: promptChars/4 + len(reply)/4,
	}, nil
}
