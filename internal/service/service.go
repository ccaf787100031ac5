// Package service implements the conversation-turn pipeline and the session
// query surface.
package service

import (
	"github.com/xiaot623/support-assistant/internal/adapter/llm"
	store "github.com/xiaot623/support-assistant/internal/repository"
)

// Service coordinates the store and the LLM gateway. It holds no state
// across requests and is safe for concurrent use.
type Service struct {
	store   store.Store
	gateway llm.Gateway
}

func New(store store.Store, gateway llm.Gateway) *Service {
	return &Service{
		store:   store,
		gateway: gateway,
	}
}
