package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/model"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/port"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

var (
	// ErrNoResponse indicates the inference gateway returned no usable content.
	ErrNoResponse = errors.New("inference gateway returned no content")

	// ErrMalformedResponse indicates the gateway returned content that is not a
	// well-formed structured record.
	ErrMalformedResponse = errors.New("inference gateway returned a malformed response")
)

const extractionPromptTemplate = `You are a payment instruction parser for a European bank.
Extract the structured payment intent from the instruction below.

Respond with a single JSON object and nothing else, using exactly these keys:
  "recipientName": string, the payee's name, or "" if not stated
  "iban": string, any account identifier mentioned, verbatim, or "" if none
  "amount": number, the payment amount, or null if not stated
  "currency": string, ISO 4217 code such as "EUR" or "GBP", or "" if not stated
  "reference": string, a short remittance memo describing the purpose
  "confidence": number between 0 and 1, your certainty in this extraction
  "suggestedPaymentType": one of "SEPA", "FasterPayments", "Unknown"
  "reasoning": string, one sentence explaining the suggested payment type

Use "SEPA" for euro transfers, "FasterPayments" for UK sterling transfers, and
"Unknown" when the instruction does not determine a scheme.

Instruction: %q`

// extractionPayload mirrors the JSON object the oracle is asked to produce.
type extractionPayload struct {
	RecipientName        string              `json:"recipientName"`
	IBAN                 string              `json:"iban"`
	Amount               decimal.NullDecimal `json:"amount"`
	Currency             string              `json:"currency"`
	Reference            string              `json:"reference"`
	Confidence           float64             `json:"confidence"`
	SuggestedPaymentType string              `json:"suggestedPaymentType"`
	Reasoning            string              `json:"reasoning"`
}

// IntentExtractor turns a raw natural-language instruction into a validated
// PaymentIntent via a single oracle call. A malformed response is a hard
// failure: there are no retries.
type IntentExtractor struct {
	gateway port.InferenceClient
	logger  *slog.Logger
}

// NewIntentExtractor creates a new IntentExtractor.
func NewIntentExtractor(gateway port.InferenceClient, logger *slog.Logger) *IntentExtractor {
	return &IntentExtractor{gateway: gateway, logger: logger}
}

// Extract builds the extraction prompt, calls the oracle once, and parses the
// returned text into a PaymentIntent. Fails with ErrNoResponse when the
// gateway errors or returns empty content, and with ErrMalformedResponse when
// the content does not parse as the target schema.
func (e *IntentExtractor) Extract(ctx context.Context, userInput string) (*model.PaymentIntent, error) {
	prompt := fmt.Sprintf(extractionPromptTemplate, userInput)

	content, err := e.gateway.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrNoResponse
	}

	raw := extractJSONObject(content)
	if raw == "" {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrMalformedResponse)
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	intent, err := model.NewPaymentIntent(
		payload.RecipientName,
		payload.IBAN,
		payload.Amount,
		payload.Currency,
		payload.Reference,
		payload.Confidence,
		valueobject.PaymentSchemeFromString(payload.SuggestedPaymentType),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	e.logger.Debug("payment intent extracted",
		slog.String("scheme", intent.SuggestedScheme().String()),
		slog.Float64("confidence", intent.Confidence()),
	)

	return intent, nil
}

// extractJSONObject strips any surrounding code-fence markup or prose and
// returns the outermost JSON object in s, or "" when none is present.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
