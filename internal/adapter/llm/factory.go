package llm

import (
	"log"

	"github.com/xiaot623/support-assistant/internal/config"
)

// NewGateway creates a Gateway based on the configured mode. SUPPORT_MODE=MOCK
// returns a MockClient; otherwise a real provider client.
func NewGateway(cfg *config.Config, systemPrompt string) Gateway {
	if cfg.Mode == config.ModeMock {
		log.Println("SUPPORT_MODE=MOCK detected, using mock LLM gateway")
		return NewMockClient()
	}

	return NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout, systemPrompt)
}
