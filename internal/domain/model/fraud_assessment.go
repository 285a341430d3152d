package model

import (
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

// FraudAssessment is the risk evaluation of a single payment instruction.
// The risk level is always derived from the numeric score via the fixed
// banding in valueobject.RiskLevelFromScore, so level and score can never
// disagree.
type FraudAssessment struct {
	riskLevel valueobject.RiskLevel
	score     int
	flags     []string
	degraded  bool
}

// NewFraudAssessment creates an assessment from an oracle-declared score and
// risk-factor flags. The score is clamped to [0,100]; flags keep their order
// and an absent sequence becomes empty.
func NewFraudAssessment(score int, flags []string) *FraudAssessment {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if flags == nil {
		flags = make([]string, 0)
	}

	return &FraudAssessment{
		riskLevel: valueobject.RiskLevelFromScore(score),
		score:     score,
		flags:     flags,
	}
}

// DegradedFraudAssessment is the designed fallback substituted when the risk
// oracle is unreachable or unparseable. It is not an error: the pipeline still
// returns a result, and the degraded marker keeps the substitution visible in
// logs and tests.
func DegradedFraudAssessment(flag string) *FraudAssessment {
	a := NewFraudAssessment(50, []string{flag})
	a.degraded = true
	return a
}

// --- Accessors ---

func (a *FraudAssessment) RiskLevel() valueobject.RiskLevel { return a.riskLevel }
func (a *FraudAssessment) Score() int                       { return a.score }
func (a *FraudAssessment) Flags() []string                  { return a.flags }
func (a *FraudAssessment) Degraded() bool                   { return a.degraded }
