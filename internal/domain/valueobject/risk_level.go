package valueobject

import "fmt"

// RiskLevel is an immutable value object classifying the fraud risk of a
// payment instruction.
type RiskLevel struct {
	value string
}

var (
	RiskLevelLow    = RiskLevel{value: "low"}
	RiskLevelMedium = RiskLevel{value: "medium"}
	RiskLevelHigh   = RiskLevel{value: "high"}
)

// RiskLevelFromString reconstructs a RiskLevel from its string representation.
func RiskLevelFromString(s string) (RiskLevel, error) {
	switch s {
	case "low":
		return RiskLevelLow, nil
	case "medium":
		return RiskLevelMedium, nil
	case "high":
		return RiskLevelHigh, nil
	default:
		return RiskLevel{}, fmt.Errorf("invalid risk level: %s", s)
	}
}

// RiskLevelFromScore derives the RiskLevel from a numeric score (0-100).
// The banding is fixed: below 30 is low, 30-69 is medium, 70 and above is high.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskLevelHigh
	case score >= 30:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// String returns the string representation.
func (r RiskLevel) String() string {
	return r.value
}

// IsZero returns true if the RiskLevel has not been set.
func (r RiskLevel) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.value == other.value
}
