package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"transcript-mailer/pkg/config"
)

type capturingRelay struct {
	from string
	to   []string
	raw  []byte
}

func (r *capturingRelay) Send(from string, to []string, msg io.Reader) error {
	raw, err := io.ReadAll(msg)
	if err != nil {
		return err
	}
	r.from, r.to, r.raw = from, to, raw
	return nil
}

func fakeCompletions(t *testing.T, content string, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		resp := map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "m",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig() config.Config {
	return config.Config{
		GroqModel:      config.DefaultGroqModel,
		OpenAIModel:    config.DefaultOpenAIModel,
		SMTPHost:       "smtp.invalid",
		SMTPPort:       587,
		SMTPUser:       "me@gmail.com",
		SMTPPass:       "app-password",
		AllowedOrigins: []string{"*"},
	}
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoundTrip_SummaryIsMailedVerbatim(t *testing.T) {
	gin.SetMode(gin.TestMode)
	summary := "## Decisions\n- Ship v2 Friday (owner: Zoë)\n- Budget “approved” – 100%\n\n## Blockers\n- none"
	var groqCalls atomic.Int32
	groq := fakeCompletions(t, "\n"+summary+"\n  ", &groqCalls)

	cfg := testConfig()
	cfg.GroqAPIKey = "gsk-test"
	cfg.GroqBaseURL = groq.URL
	relay := &capturingRelay{}
	engine := NewHandler(cfg, nil, WithRelay(relay), WithHTTPClient(&http.Client{Timeout: 5 * time.Second})).Engine()

	w := do(t, engine, http.MethodPost, "/api/summarize", `{"transcript":"Alice: ship it","instruction":"Bullets"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sum struct {
		Summary string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	require.Equal(t, summary, sum.Summary)

	payload, err := json.Marshal(map[string]any{
		"recipients": []string{"a@x.com", "b@x.com"},
		"body":       sum.Summary,
	})
	require.NoError(t, err)
	w = do(t, engine, http.MethodPost, "/send-email", string(payload))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sent struct {
		OK        bool   `json:"ok"`
		MessageID string `json:"messageId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sent))
	require.True(t, sent.OK)
	require.NotEmpty(t, sent.MessageID)

	require.Equal(t, "me@gmail.com", relay.from)
	require.Equal(t, []string{"a@x.com", "b@x.com"}, relay.to)

	r, err := mail.CreateReader(bytes.NewReader(relay.raw))
	require.NoError(t, err)
	require.Equal(t, "a@x.com,b@x.com", r.Header.Get("To"))
	subject, err := r.Header.Subject()
	require.NoError(t, err)
	require.Equal(t, "AI Summary", subject)
	p, err := r.NextPart()
	require.NoError(t, err)
	body, err := io.ReadAll(p.Body)
	require.NoError(t, err)
	require.Equal(t, summary, string(body))
	require.Equal(t, int32(1), groqCalls.Load())
}

func TestRoutes_BarePathsAndAPIPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := NewHandler(testConfig(), nil, WithRelay(&capturingRelay{})).Engine()

	for _, path := range []string{"/summarize", "/api/summarize"} {
		w := do(t, engine, http.MethodPost, path, `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code, path)
		require.JSONEq(t, `{"error":"Missing transcript or instruction"}`, w.Body.String())
	}
	for _, path := range []string{"/send-email", "/api/send-email"} {
		w := do(t, engine, http.MethodPost, path, `{"recipients":[]}`)
		require.Equal(t, http.StatusBadRequest, w.Code, path)
		require.JSONEq(t, `{"error":"Recipients required"}`, w.Body.String())
	}
}

func TestSummarize_NoProviderConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := NewHandler(testConfig(), nil, WithRelay(&capturingRelay{})).Engine()

	w := do(t, engine, http.MethodPost, "/summarize", `{"transcript":"t","instruction":"i"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"No AI provider configured. Set GROQ_API_KEY or OPENAI_API_KEY."}`, w.Body.String())
}

func TestHealthAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := NewHandler(testConfig(), nil).Engine()

	w := do(t, engine, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestProviderSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.OpenAIAPIKey = "sk-secret"
	cfg.SMTPFrom = "Summaries <noreply@example.com>"
	engine := NewHandler(cfg, nil).Engine()

	w := do(t, engine, http.MethodGet, "/api/settings/provider", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"provider":"openai","model":"gpt-4o-mini","mailConfigured":true,"sender":"Summaries <noreply@example.com>"}`, w.Body.String())
	require.NotContains(t, w.Body.String(), "sk-secret")
	require.NotContains(t, w.Body.String(), "app-password")
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := NewHandler(testConfig(), nil).Engine()

	req := httptest.NewRequest(http.MethodOptions, "/api/summarize", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
