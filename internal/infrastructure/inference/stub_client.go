package inference

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/port"
)

var _ port.InferenceClient = (*StubClient)(nil)

// StubClient implements port.InferenceClient as a stub for development
// without a configured inference backend. It answers each prompt with a
// canned, well-formed payload matching the schema the prompt asks for.
type StubClient struct {
	logger *slog.Logger
}

// NewStubClient creates a new stub inference client.
func NewStubClient(logger *slog.Logger) *StubClient {
	return &StubClient{logger: logger}
}

const stubExtraction = `{
  "recipientName": "",
  "iban": "",
  "amount": null,
  "currency": "",
  "reference": "",
  "confidence": 0,
  "suggestedPaymentType": "Unknown",
  "reasoning": "stub inference client, no extraction performed"
}`

const stubRisk = `{
  "riskLevel": "medium",
  "score": 50,
  "flags": ["Stub inference client"],
  "recommendation": "configure a real inference backend"
}`

// Generate returns the canned payload for the schema named in the prompt.
func (c *StubClient) Generate(_ context.Context, prompt string) (string, error) {
	c.logger.Debug("stub inference response requested",
		slog.Int("prompt_length", len(prompt)),
	)

	if strings.Contains(prompt, `"riskLevel"`) {
		return stubRisk, nil
	}
	return stubExtraction, nil
}
