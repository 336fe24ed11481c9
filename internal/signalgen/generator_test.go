package signalgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rationale = `Risk Assessment: Medium

Key Factors:
- Strong upward momentum
- High volume confirming trend
- Low volatility environment`

func TestGenerateSignal(t *testing.T) {
	g := NewGenerator()

	sig := g.Generate(
		Prediction{Direction: "up", Confidence: 0.75},
		MarketSnapshot{Price: 450.00},
		rationale,
	)

	require.NotNil(t, sig)
	assert.Equal(t, "SPY", sig.Symbol)
	assert.Equal(t, 0.75, sig.Confidence)
	assert.Equal(t, "up", sig.Direction)
	assert.Equal(t, "call", sig.SignalType)
	assert.Equal(t, 450.00, sig.EntryPrice)
	assert.InDelta(t, 453.375, sig.TargetPrice, 1e-9) // 0.75% move
	assert.InDelta(t, 447.75, sig.StopLoss, 1e-9)     // 0.5% stop
	assert.InDelta(t, 0.0375, sig.PositionSize, 1e-9) // 5% max scaled by confidence
	assert.InDelta(t, 1.5, sig.RiskRewardRatio, 1e-9)
	assert.Equal(t, "intraday", sig.TimeHorizon)
	assert.Equal(t, rationale, sig.Rationale)
	assert.Equal(t, "v1.0.0", sig.ModelVersion)
}

func TestGenerateSignalLowConfidence(t *testing.T) {
	g := &Generator{MaxPositionSize: 0.05, ConfidenceThreshold: 0.7}

	sig := g.Generate(
		Prediction{Direction: "up", Confidence: 0.5},
		MarketSnapshot{Price: 450.00},
		rationale,
	)
	assert.Nil(t, sig)
}

func TestGenerateSignalDownDirection(t *testing.T) {
	g := NewGenerator()

	sig := g.Generate(
		Prediction{Direction: "down", Confidence: 0.9},
		MarketSnapshot{Price: 100.00},
		rationale,
	)

	require.NotNil(t, sig)
	assert.Equal(t, "put", sig.SignalType)
	assert.InDelta(t, 99.1, sig.TargetPrice, 1e-9)
	assert.InDelta(t, 100.5, sig.StopLoss, 1e-9)
}

func TestGenerateSignalNeutralDirection(t *testing.T) {
	g := NewGenerator()

	sig := g.Generate(
		Prediction{Direction: "neutral", Confidence: 0.8},
		MarketSnapshot{Price: 450.00},
		rationale,
	)

	require.NotNil(t, sig)
	assert.Equal(t, "put", sig.SignalType)
	assert.Equal(t, sig.EntryPrice, sig.TargetPrice)
	assert.Equal(t, sig.EntryPrice, sig.StopLoss)
	assert.Zero(t, sig.RiskRewardRatio)
	assert.Equal(t, "high", sig.RiskLevel)
}

func TestAssessRiskLevel(t *testing.T) {
	assert.Equal(t, "low", assessRiskLevel(0.85, 2.5))
	assert.Equal(t, "medium", assessRiskLevel(0.7, 1.8))
	assert.Equal(t, "high", assessRiskLevel(0.5, 1.0))
}

func TestFilterByRiskReward(t *testing.T) {
	signals := []*Signal{
		{RiskRewardRatio: 1.2},
		{RiskRewardRatio: 1.5},
		{RiskRewardRatio: 2.4},
	}
	kept := Filter(signals, 1.5)
	require.Len(t, kept, 2)
	assert.Equal(t, 1.5, kept[0].RiskRewardRatio)
}
