package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ieltshub/config"
	"ieltshub/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Claude.ApiKey = "test-key"
	cfg.Claude.ApiUrl = "http://127.0.0.1:1"
	cfg.Claude.Model = "claude-3-sonnet-20240229"
	cfg.Claude.MaxTokens = 1000
	cfg.Claude.TimeoutSeconds = 5
	return cfg
}

func testRequest() models.EvaluationRequest {
	return models.EvaluationRequest{
		Passage:            "P",
		Question:           "Q",
		StudentResponse:    "R",
		ComplexSentences:   "yes",
		AdvancedVocabulary: "no",
		CohesiveDevices:    "yes",
	}
}

func newTestClaude(url string) *Claude {
	return &Claude{
		URL:        url,
		APIKey:     "test-key",
		Model:      "claude-3-sonnet-20240229",
		MaxTokens:  1000,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestEvaluateSuccess(t *testing.T) {
	var gotBody ClaudeRequest
	var gotContentType, gotAPIKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAPIKey = r.Header.Get("X-API-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"content": "Good job."}`))
	}))
	defer srv.Close()

	c := newTestClaude(srv.URL)
	evaluation, err := c.Evaluate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if evaluation != "Good job." {
		t.Errorf("Expected evaluation %q, got %q", "Good job.", evaluation)
	}

	if gotContentType != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", gotContentType)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("Expected X-API-Key test-key, got %q", gotAPIKey)
	}
	if gotBody.Model != "claude-3-sonnet-20240229" {
		t.Errorf("Unexpected model: %q", gotBody.Model)
	}
	if gotBody.MaxTokens != 1000 {
		t.Errorf("Unexpected max_tokens: %d", gotBody.MaxTokens)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" {
		t.Fatalf("Expected one user message, got %+v", gotBody.Messages)
	}

	prompt := gotBody.Messages[0].Content
	for _, field := range []string{"P", "Q", "R", "yes", "no"} {
		if !strings.Contains(prompt, field) {
			t.Errorf("Prompt missing field value %q", field)
		}
	}
}

func TestEvaluateNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClaude(srv.URL)
	evaluation, err := c.Evaluate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Non-200 should not return an error, got: %v", err)
	}
	if evaluation != EvaluationFallback {
		t.Errorf("Expected fallback %q, got %q", EvaluationFallback, evaluation)
	}
}

func TestEvaluateEmptyContentRelayedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": ""}`))
	}))
	defer srv.Close()

	c := newTestClaude(srv.URL)
	evaluation, err := c.Evaluate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Present-but-empty content must not be an error: %v", err)
	}
	if evaluation != "" {
		t.Errorf("Expected empty evaluation relayed verbatim, got %q", evaluation)
	}
}

func TestEvaluateMissingContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type": "message"}`))
	}))
	defer srv.Close()

	c := newTestClaude(srv.URL)
	if _, err := c.Evaluate(context.Background(), testRequest()); err == nil {
		t.Error("Expected error for response without content field")
	}
}

func TestEvaluateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newTestClaude(srv.URL)
	if _, err := c.Evaluate(context.Background(), testRequest()); err == nil {
		t.Error("Expected error for unparseable response body")
	}
}

func TestEvaluateConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClaude(srv.URL)
	if _, err := c.Evaluate(context.Background(), testRequest()); err == nil {
		t.Error("Expected error when the API is unreachable")
	}
}

func TestEvaluateContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Before Go 1.23 the server only notices a client disconnect (and
		// cancels r.Context()) once the request body has been consumed.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := newTestClaude(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.Evaluate(ctx, testRequest()); err == nil {
		t.Error("Expected error when context is cancelled mid-call")
	}
}

func TestNewClaudeRequiresAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.Claude.ApiKey = ""
	if _, err := NewClaude(cfg); err == nil {
		t.Error("Expected error when no API key is configured")
	}

	cfg.Claude.ApiKey = "test-key"
	if _, err := NewClaude(cfg); err != nil {
		t.Errorf("Expected client with API key set, got error: %v", err)
	}
}
