package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xiaot623/support-assistant/internal/domain"
	"github.com/xiaot623/support-assistant/internal/prompt"
)

// Client is the chat-completion provider client. It speaks the
// OpenAI-compatible wire format (Groq exposes the same endpoints).
type Client struct {
	baseURL      string
	apiKey       string
	model        string
	systemPrompt string
	httpClient   *http.Client
}

// NewClient creates a new provider client. The system prompt is constant for
// the process lifetime, so it is computed once by the caller and cached here.
func NewClient(baseURL, apiKey, model string, timeout time.Duration, systemPrompt string) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		apiKey:       apiKey,
		model:        model,
		systemPrompt: systemPrompt,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ChatCompletionRequest represents the chat completion request.
type ChatCompletionRequest struct {
	Model    string               `json:"model"`
	Messages []domain.ChatMessage `json:"messages"`
}

// ChatCompletionResponse represents the chat completion response.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

// Choice represents a completion choice.
type Choice struct {
	Index        int                 `json:"index"`
	Message      *domain.ChatMessage `json:"message,omitempty"`
	FinishReason string              `json:"finish_reason,omitempty"`
}

// Usage represents token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// APIError represents the error details.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

const systemRole = domain.Role("system")

// Complete dispatches one completion request built from the system prompt,
// the capped history, and the new user turn.
func (c *Client) Complete(ctx context.Context, history []domain.ChatMessage, userMessage string) (*domain.TurnResult, error) {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	messages := make([]domain.ChatMessage, 0, len(history)+2)
	messages = append(messages, domain.ChatMessage{Role: systemRole, Content: c.systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: userMessage})

	req := &ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}

	requestID := "llm_" + uuid.New().String()[:8]
	start := time.Now()

	resp, err := c.createChatCompletion(ctx, req)
	if err != nil {
		log.Printf("llm request %s failed after %dms: %v", requestID, time.Since(start).Milliseconds(), err)
		return nil, err
	}
	log.Printf("llm request %s completed in %dms", requestID, time.Since(start).Milliseconds())

	result := &domain.TurnResult{Reply: prompt.FallbackReply}
	if len(resp.Choices) > 0 && resp.Choices[0].Message != nil && resp.Choices[0].Message.Content != "" {
		result.Reply = resp.Choices[0].Message.Content
	}
	if resp.Usage != nil {
		result.TokensUsed = resp.Usage.TotalTokens
	}
	return result, nil
}

// createChatCompletion sends a chat completion request.
func (c *Client) createChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.GatewayError{Message: "provider unreachable", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.GatewayError{Message: "failed to read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, &domain.GatewayError{Status: resp.StatusCode, Message: errResp.Error.Message}
		}
		return nil, &domain.GatewayError{Status: resp.StatusCode, Message: string(respBody)}
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &domain.GatewayError{Status: resp.StatusCode, Message: "malformed provider response", Err: err}
	}

	return &result, nil
}
