// Package domain defines the core domain models for the support assistant.
package domain

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Session represents a persisted conversation thread. The id is
// client-generated and treated as untrusted input.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message represents a single stored message in a session. The id is
// assigned by the store and is the ordering key.
type Message struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id"`
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	TokensUsed int       `json:"tokens_used"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatMessage is a role-tagged utterance as sent to the LLM provider.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SessionSummary is a session with its message count, as returned by the
// session listing.
type SessionSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

// TurnResult is the outcome of one completed chat turn.
type TurnResult struct {
	Reply      string `json:"reply"`
	TokensUsed int    `json:"tokensUsed"`
}

// Conversation is the full ordered transcript of a session.
type Conversation struct {
	SessionID string    `json:"sessionId"`
	Messages  []Message `json:"messages"`
}
