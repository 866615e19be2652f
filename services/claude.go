package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ieltshub/config"
	"ieltshub/models"
)

// EvaluationFallback is the exact text relayed to callers when the API
// answers with a non-success status. The RPC itself still succeeds in that
// case; only transport and decoding failures fail the call.
const EvaluationFallback = "Error: Unable to get evaluation from Claude."

const evaluationPrompt = `Evaluate the following IELTS reading response:

Passage: %s
Question: %s
Student Response: %s

Please consider the following aspects in your evaluation:
1. Complex Sentences: %s
2. Advanced Vocabulary: %s
3. Cohesive Devices: %s

Provide a detailed evaluation of the student's response, including strengths and areas for improvement.`

type ClaudeRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Claude struct {
	URL       string
	APIKey    string
	Model     string
	MaxTokens int

	httpClient *http.Client
}

func NewClaude(cfg *config.Config) (*Claude, error) {
	if cfg.Claude.ApiKey == "" {
		return nil, fmt.Errorf("claude api key is not configured (set CLAUDE_API_KEY or claude.apiKey)")
	}
	return &Claude{
		URL:       cfg.Claude.ApiUrl,
		APIKey:    cfg.Claude.ApiKey,
		Model:     cfg.Claude.Model,
		MaxTokens: cfg.Claude.MaxTokens,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Claude.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// Evaluate sends one submission to the messages API and returns the
// evaluation text. Cancelling ctx aborts the outbound call.
func (c *Claude) Evaluate(ctx context.Context, req models.EvaluationRequest) (string, error) {
	prompt := fmt.Sprintf(evaluationPrompt,
		req.Passage, req.Question, req.StudentResponse,
		req.ComplexSentences, req.AdvancedVocabulary, req.CohesiveDevices)

	requestData := ClaudeRequest{
		Model:     c.Model,
		Messages:  []Message{{Role: "user", Content: prompt}},
		MaxTokens: c.MaxTokens,
	}

	payload, err := json.Marshal(requestData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request data: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return EvaluationFallback, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	// Content is a pointer so an empty evaluation still relays verbatim;
	// only a genuinely absent field is a fault.
	var responseData struct {
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if responseData.Content == nil {
		return "", fmt.Errorf("unexpected response format: missing content")
	}

	return *responseData.Content, nil
}
