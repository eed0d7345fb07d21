package valueobject_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/signalgraph/internal/domain/valueobject"
)

func TestRiskTier_FromScore(t *testing.T) {
	tests := []struct {
		name     string
		expected valueobject.RiskTier
		score    int
	}{
		{name: "min int is LOW", expected: valueobject.RiskTierLow, score: math.MinInt},
		{name: "score -5 is LOW", expected: valueobject.RiskTierLow, score: -5},
		{name: "score 0 is LOW", expected: valueobject.RiskTierLow, score: 0},
		{name: "score 1 is MODERATE", expected: valueobject.RiskTierModerate, score: 1},
		{name: "score 8 is MODERATE", expected: valueobject.RiskTierModerate, score: 8},
		{name: "score 9 is MODERATE", expected: valueobject.RiskTierModerate, score: 9},
		{name: "score 10 is HIGH", expected: valueobject.RiskTierHigh, score: 10},
		{name: "score 21 is HIGH", expected: valueobject.RiskTierHigh, score: 21},
		{name: "max int is HIGH", expected: valueobject.RiskTierHigh, score: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := valueobject.RiskTierFromScore(tt.score)
			assert.True(t, tt.expected.Equal(result),
				"expected %s for score %d, got %s", tt.expected, tt.score, result)
		})
	}
}

func TestRiskTier_PartitionIsContiguous(t *testing.T) {
	prev := valueobject.RiskTierFromScore(-50)
	changes := 0
	for score := -49; score <= 50; score++ {
		cur := valueobject.RiskTierFromScore(score)
		if !cur.Equal(prev) {
			changes++
		}
		prev = cur
	}

	assert.Equal(t, 2, changes, "three contiguous ranges means exactly two boundaries")
}

func TestRiskTier_FromString(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.RiskTier
		wantErr  bool
	}{
		{"LOW", valueobject.RiskTierLow, false},
		{"MODERATE", valueobject.RiskTierModerate, false},
		{"HIGH", valueobject.RiskTierHigh, false},
		{"MEDIUM", valueobject.RiskTier{}, true},
		{"low", valueobject.RiskTier{}, true},
		{"", valueobject.RiskTier{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.RiskTierFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result))
		})
	}
}

func TestRiskTier_Feedback(t *testing.T) {
	assert.Equal(t, "High risk: Proceed with caution.", valueobject.RiskTierHigh.Feedback())
	assert.Equal(t, "Moderate risk: Review context.", valueobject.RiskTierModerate.Feedback())
	assert.Equal(t, "Low risk: Signs of stability or reform.", valueobject.RiskTierLow.Feedback())
	assert.Empty(t, valueobject.RiskTier{}.Feedback())
}

func TestRiskTier_IsZero(t *testing.T) {
	var zero valueobject.RiskTier
	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.RiskTierLow.IsZero())
}

func TestNodeKind_Color(t *testing.T) {
	assert.Equal(t, "#60a5fa", valueobject.NodeKindEntity.Color())
	assert.Equal(t, "#facc15", valueobject.NodeKindSignal.Color())
	assert.Equal(t, "#9ca3af", valueobject.NodeKind("other").Color())
}
