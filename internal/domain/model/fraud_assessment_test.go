package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/model"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

func TestNewFraudAssessment(t *testing.T) {
	t.Run("level is always derived from the score", func(t *testing.T) {
		for score := 0; score <= 100; score += 5 {
			a := model.NewFraudAssessment(score, nil)
			assert.True(t, a.RiskLevel().Equal(valueobject.RiskLevelFromScore(score)),
				"score %d got level %s", score, a.RiskLevel())
		}
	})

	t.Run("clamps score to the valid range", func(t *testing.T) {
		a := model.NewFraudAssessment(250, nil)
		assert.Equal(t, 100, a.Score())
		assert.True(t, a.RiskLevel().Equal(valueobject.RiskLevelHigh))

		a = model.NewFraudAssessment(-5, nil)
		assert.Equal(t, 0, a.Score())
		assert.True(t, a.RiskLevel().Equal(valueobject.RiskLevelLow))
	})

	t.Run("nil flags become an empty ordered sequence", func(t *testing.T) {
		a := model.NewFraudAssessment(10, nil)
		assert.NotNil(t, a.Flags())
		assert.Empty(t, a.Flags())
	})

	t.Run("preserves flag order", func(t *testing.T) {
		flags := []string{"urgency language", "missing recipient", "large amount"}
		a := model.NewFraudAssessment(80, flags)
		assert.Equal(t, flags, a.Flags())
	})

	t.Run("is not degraded", func(t *testing.T) {
		a := model.NewFraudAssessment(10, nil)
		assert.False(t, a.Degraded())
	})
}

func TestDegradedFraudAssessment(t *testing.T) {
	a := model.DegradedFraudAssessment("Analysis unavailable")

	assert.True(t, a.RiskLevel().Equal(valueobject.RiskLevelMedium))
	assert.Equal(t, 50, a.Score())
	assert.Equal(t, []string{"Analysis unavailable"}, a.Flags())
	assert.True(t, a.Degraded())
}
