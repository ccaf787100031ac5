package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaot623/support-assistant/internal/domain"
	store "github.com/xiaot623/support-assistant/internal/repository"
	"github.com/xiaot623/support-assistant/internal/service"
)

type stubGateway struct {
	result *domain.TurnResult
	err    error
}

func (g *stubGateway) Complete(ctx context.Context, history []domain.ChatMessage, userMessage string) (*domain.TurnResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func newTestHandler(t *testing.T, gateway *stubGateway) (*Handler, *store.SQLiteStore) {
	t.Helper()
	db, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHandler(service.New(db, gateway)), db
}

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.Chat(c))
	return rec
}

func TestChatSuccess(t *testing.T) {
	gateway := &stubGateway{result: &domain.TurnResult{Reply: "Go to Settings > Security.", TokensUsed: 12}}
	h, _ := newTestHandler(t, gateway)

	rec := postChat(t, h, `{"sessionId":"s1","message":"How do I reset my password?"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TurnResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Go to Settings > Security.", resp.Reply)
	assert.Equal(t, 12, resp.TokensUsed)
}

func TestChatValidation(t *testing.T) {
	gateway := &stubGateway{result: &domain.TurnResult{Reply: "ok"}}
	h, db := newTestHandler(t, gateway)

	cases := []struct {
		name string
		body string
	}{
		{"missing sessionId", `{"message":"hello"}`},
		{"missing message", `{"sessionId":"s1"}`},
		{"whitespace message", `{"sessionId":"s1","message":"   "}`},
		{"empty body", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postChat(t, h, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp["error"], "required")
		})
	}

	sessions, err := db.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestChatGatewayFailure(t *testing.T) {
	gateway := &stubGateway{err: &domain.GatewayError{Status: 503, Message: "provider down"}}
	h, db := newTestHandler(t, gateway)

	rec := postChat(t, h, `{"sessionId":"s1","message":"hello"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "LLM service error. Please try again.", resp["error"])
	assert.NotContains(t, resp["error"], "provider down", "no upstream details leak")

	messages, err := db.ReadFullHistory(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestGetConversation(t *testing.T) {
	gateway := &stubGateway{result: &domain.TurnResult{Reply: "answer", TokensUsed: 5}}
	h, _ := newTestHandler(t, gateway)

	postChat(t, h, `{"sessionId":"s1","message":"question"}`)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/conversations/s1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues("s1")

	require.NoError(t, h.GetConversation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SessionID)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, domain.RoleUser, resp.Messages[0].Role)
	assert.Equal(t, "question", resp.Messages[0].Content)
	assert.Equal(t, domain.RoleAssistant, resp.Messages[1].Role)
	assert.Equal(t, 5, resp.Messages[1].TokensUsed)
}

func TestGetConversationUnknownSession(t *testing.T) {
	h, _ := newTestHandler(t, &stubGateway{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/conversations/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues("ghost")

	require.NoError(t, h.GetConversation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Session not found.", resp["error"])
}

func TestListSessions(t *testing.T) {
	gateway := &stubGateway{result: &domain.TurnResult{Reply: "ok", TokensUsed: 1}}
	h, _ := newTestHandler(t, gateway)

	postChat(t, h, `{"sessionId":"s1","message":"one"}`)
	postChat(t, h, `{"sessionId":"s2","message":"two"}`)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListSessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sessions []domain.SessionSummary `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 2)
	for _, s := range resp.Sessions {
		assert.Equal(t, 2, s.MessageCount)
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t, &stubGateway{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
