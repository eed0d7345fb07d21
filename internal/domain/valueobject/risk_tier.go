package valueobject

import "fmt"

// RiskTier is an immutable value object classifying an aggregate risk score.
type RiskTier struct {
	value string
}

const (
	riskTierLow      = "LOW"
	riskTierModerate = "MODERATE"
	riskTierHigh     = "HIGH"
)

var (
	RiskTierLow      = RiskTier{value: riskTierLow}
	RiskTierModerate = RiskTier{value: riskTierModerate}
	RiskTierHigh     = RiskTier{value: riskTierHigh}
)

// Tier thresholds are inclusive lower bounds.
const (
	HighTierThreshold     = 10
	ModerateTierThreshold = 1
)

// RiskTierFromScore classifies a score: >=10 HIGH, 1..9 MODERATE, <=0 LOW.
func RiskTierFromScore(score int) RiskTier {
	switch {
	case score >= HighTierThreshold:
		return RiskTierHigh
	case score >= ModerateTierThreshold:
		return RiskTierModerate
	default:
		return RiskTierLow
	}
}

// RiskTierFromString reconstructs a RiskTier from its string representation.
func RiskTierFromString(s string) (RiskTier, error) {
	switch s {
	case riskTierLow:
		return RiskTierLow, nil
	case riskTierModerate:
		return RiskTierModerate, nil
	case riskTierHigh:
		return RiskTierHigh, nil
	default:
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
}

// String returns the string representation.
func (t RiskTier) String() string {
	return t.value
}

// Feedback returns the operator-facing guidance shown next to the score.
func (t RiskTier) Feedback() string {
	switch t.value {
	case riskTierHigh:
		return "High risk: Proceed with caution."
	case riskTierModerate:
		return "Moderate risk: Review context."
	case riskTierLow:
		return "Low risk: Signs of stability or reform."
	default:
		return ""
	}
}

// IsZero returns true if the RiskTier has not been set.
func (t RiskTier) IsZero() bool {
	return t.value == ""
}

// Equal checks equality with another RiskTier.
func (t RiskTier) Equal(other RiskTier) bool {
	return t.value == other.value
}
