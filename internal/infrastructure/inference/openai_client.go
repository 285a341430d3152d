package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/port"
)

var _ port.InferenceClient = (*OpenAIClient)(nil)

// Config holds the settings for the OpenAI-compatible inference client.
type Config struct {
	BaseURL          string
	APIKey           string
	Model            string
	Temperature      float64
	Timeout          time.Duration
	MaxResponseBytes int64
}

// OpenAIClient implements port.InferenceClient against an OpenAI-compatible
// chat completions endpoint. The temperature is pinned low: the pipeline wants
// determinism-seeking behavior, though responses are not guaranteed
// byte-identical across calls.
type OpenAIClient struct {
	baseURL          string
	apiKey           string
	model            string
	temperature      float64
	client           *http.Client
	maxResponseBytes int64
}

// NewOpenAIClient creates a new inference client.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = 4 * 1024 * 1024
	}

	return &OpenAIClient{
		baseURL:          cfg.BaseURL,
		apiKey:           cfg.APIKey,
		model:            cfg.Model,
		temperature:      cfg.Temperature,
		maxResponseBytes: cfg.MaxResponseBytes,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate sends the prompt as a single user message and returns the first
// choice's content verbatim.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/chat/completions", c.baseURL),
		bytes.NewReader(body),
	)
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call inference gateway: %w", err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, c.maxResponseBytes+1)
	respBody, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("read inference response: %w", err)
	}
	if int64(len(respBody)) > c.maxResponseBytes {
		return "", fmt.Errorf("inference response exceeded limit (%d bytes)", c.maxResponseBytes)
	}

	if resp.StatusCode >= 400 {
		var errBody errorResponse
		if err := json.Unmarshal(respBody, &errBody); err != nil {
			return "", fmt.Errorf("inference gateway status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("inference gateway error: %s (type=%s)", errBody.Error.Message, errBody.Error.Type)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("decode inference response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("inference response had no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
