package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  valueobject.RiskLevel
	}{
		{0, valueobject.RiskLevelLow},
		{15, valueobject.RiskLevelLow},
		{29, valueobject.RiskLevelLow},
		{30, valueobject.RiskLevelMedium},
		{50, valueobject.RiskLevelMedium},
		{69, valueobject.RiskLevelMedium},
		{70, valueobject.RiskLevelHigh},
		{85, valueobject.RiskLevelHigh},
		{100, valueobject.RiskLevelHigh},
	}

	for _, tt := range tests {
		got := valueobject.RiskLevelFromScore(tt.score)
		assert.Equal(t, tt.want, got, "score %d", tt.score)
	}
}

func TestRiskLevelFromScore_BandingIsConsistent(t *testing.T) {
	// Every score in range must land in exactly the band the policy defines.
	for score := 0; score <= 100; score++ {
		level := valueobject.RiskLevelFromScore(score)
		switch {
		case score < 30:
			assert.Equal(t, valueobject.RiskLevelLow, level, "score %d", score)
		case score < 70:
			assert.Equal(t, valueobject.RiskLevelMedium, level, "score %d", score)
		default:
			assert.Equal(t, valueobject.RiskLevelHigh, level, "score %d", score)
		}
	}
}

func TestRiskLevelFromString(t *testing.T) {
	t.Run("valid levels round-trip", func(t *testing.T) {
		for _, level := range []valueobject.RiskLevel{
			valueobject.RiskLevelLow,
			valueobject.RiskLevelMedium,
			valueobject.RiskLevelHigh,
		} {
			got, err := valueobject.RiskLevelFromString(level.String())
			require.NoError(t, err)
			assert.True(t, got.Equal(level))
		}
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		_, err := valueobject.RiskLevelFromString("critical")
		require.Error(t, err)

		_, err = valueobject.RiskLevelFromString("")
		require.Error(t, err)
	})
}

func TestRiskLevelIsZero(t *testing.T) {
	var zero valueobject.RiskLevel
	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.RiskLevelLow.IsZero())
}
