package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/model"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/port"
)

const (
	// FlagAnalysisUnavailable marks a fallback assessment caused by an
	// unreachable risk oracle.
	FlagAnalysisUnavailable = "Analysis unavailable"

	// FlagAnalysisError marks a fallback assessment caused by an unparseable
	// risk response.
	FlagAnalysisError = "Analysis error"
)

const riskPromptTemplate = `You are a fraud analyst reviewing a payment instruction before it is
submitted for clearing.

Original instruction: %q

Extracted intent: %s

Flag anything suspicious, in particular:
  - abnormally large amounts for a personal payment
  - urgency or pressure language ("immediately", "right now", "before it's too late")
  - missing critical fields (no recipient, no account, no amount)
  - social-engineering markers (impersonation, secrecy, unusual payment routes)

Respond with a single JSON object and nothing else, using exactly these keys:
  "riskLevel": one of "low", "medium", "high"
  "score": integer between 0 and 100, higher means riskier
  "flags": array of short human-readable risk-factor strings, [] if none
  "recommendation": one sentence for the payment operator`

// riskPayload mirrors the JSON object the oracle is asked to produce.
type riskPayload struct {
	RiskLevel      string   `json:"riskLevel"`
	Score          *int     `json:"score"`
	Flags          []string `json:"flags"`
	Recommendation string   `json:"recommendation"`
}

// RiskAnalyzer scores a payment instruction for fraud and social-engineering
// risk via a second oracle call. It never fails: when the oracle is
// unreachable or unparseable it degrades to a fallback assessment so the
// pipeline can still return a result.
type RiskAnalyzer struct {
	gateway port.InferenceClient
	logger  *slog.Logger
}

// NewRiskAnalyzer creates a new RiskAnalyzer.
func NewRiskAnalyzer(gateway port.InferenceClient, logger *slog.Logger) *RiskAnalyzer {
	return &RiskAnalyzer{gateway: gateway, logger: logger}
}

// Assess evaluates the instruction together with the extracted intent. The
// oracle's own risk level is advisory; the stored level is always derived from
// the numeric score by the fixed banding, with 50 substituted when the oracle
// omits the score.
func (a *RiskAnalyzer) Assess(ctx context.Context, userInput string, intent *model.PaymentIntent) *model.FraudAssessment {
	prompt := fmt.Sprintf(riskPromptTemplate, userInput, serializeIntent(intent))

	content, err := a.gateway.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(content) == "" {
		a.logger.Warn("risk oracle unavailable, substituting fallback assessment",
			slog.Any("error", err),
		)
		return model.DegradedFraudAssessment(FlagAnalysisUnavailable)
	}

	raw := extractJSONObject(content)
	var payload riskPayload
	if raw == "" || json.Unmarshal([]byte(raw), &payload) != nil {
		a.logger.Warn("risk oracle response unparseable, substituting fallback assessment")
		return model.DegradedFraudAssessment(FlagAnalysisError)
	}

	score := 50
	if payload.Score != nil {
		score = *payload.Score
	}

	assessment := model.NewFraudAssessment(score, payload.Flags)

	if payload.RiskLevel != "" && payload.RiskLevel != assessment.RiskLevel().String() {
		a.logger.Debug("oracle risk level disagrees with score banding",
			slog.String("oracle_level", payload.RiskLevel),
			slog.String("banded_level", assessment.RiskLevel().String()),
			slog.Int("score", assessment.Score()),
		)
	}

	return assessment
}

// serializeIntent renders the intent as compact JSON for embedding in the risk
// prompt.
func serializeIntent(intent *model.PaymentIntent) string {
	b, err := json.Marshal(map[string]any{
		"recipientName":        intent.RecipientName(),
		"iban":                 intent.IBAN(),
		"amount":               intent.Amount(),
		"currency":             intent.Currency(),
		"reference":            intent.Reference(),
		"confidence":           intent.Confidence(),
		"suggestedPaymentType": intent.SuggestedScheme().String(),
	})
	if err != nil {
		return "{}"
	}
	return string(b)
}
