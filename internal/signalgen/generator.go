package signalgen

import "time"

// Prediction is a direction classifier output.
type Prediction struct {
	Direction  string // up | down | neutral
	Confidence float64
}

// MarketSnapshot carries the current market context a signal is priced from.
type MarketSnapshot struct {
	Price float64
}

// Signal is one actionable trading signal.
type Signal struct {
	Timestamp       time.Time `json:"timestamp"`
	Symbol          string    `json:"symbol"`
	SignalType      string    `json:"signal_type"` // call | put
	Direction       string    `json:"direction"`
	Confidence      float64   `json:"confidence"`
	EntryPrice      float64   `json:"entry_price"`
	TargetPrice     float64   `json:"target_price"`
	StopLoss        float64   `json:"stop_loss"`
	PositionSize    float64   `json:"position_size"` // fraction of portfolio
	RiskRewardRatio float64   `json:"risk_reward_ratio"`
	TimeHorizon     string    `json:"time_horizon"`
	Rationale       string    `json:"rationale"`
	RiskLevel       string    `json:"risk_level"` // low | medium | high
	ModelVersion    string    `json:"model_version"`
}

const (
	defaultMaxPositionSize     = 0.05
	defaultConfidenceThreshold = 0.7

	// Price levels scale with confidence: a 0.7-confidence call targets a
	// 0.7% move and always stops out at 0.5%.
	targetMovePerConfidence = 0.01
	stopLossPercent         = 0.005

	modelVersion = "v1.0.0"
)

// Generator turns predictions into sized trading signals.
type Generator struct {
	MaxPositionSize     float64
	ConfidenceThreshold float64
}

// NewGenerator creates a Generator with the default sizing and threshold.
func NewGenerator() *Generator {
	return &Generator{
		MaxPositionSize:     defaultMaxPositionSize,
		ConfidenceThreshold: defaultConfidenceThreshold,
	}
}

// Generate builds a signal from a prediction, market context and analysis
// rationale. Returns nil when confidence is below the threshold.
func (g *Generator) Generate(pred Prediction, market MarketSnapshot, rationale string) *Signal {
	if pred.Confidence < g.ConfidenceThreshold {
		return nil
	}

	entry := market.Price
	target := g.targetPrice(entry, pred.Direction, pred.Confidence)
	stop := g.stopLoss(entry, pred.Direction)

	risk := abs(entry - stop)
	reward := abs(target - entry)
	var riskReward float64
	if risk > 0 {
		riskReward = reward / risk
	}

	signalType := "put"
	if pred.Direction == "up" {
		signalType = "call"
	}

	return &Signal{
		Timestamp:       time.Now().UTC(),
		Symbol:          "SPY",
		SignalType:      signalType,
		Direction:       pred.Direction,
		Confidence:      pred.Confidence,
		EntryPrice:      entry,
		TargetPrice:     target,
		StopLoss:        stop,
		PositionSize:    g.positionSize(pred.Confidence),
		RiskRewardRatio: riskReward,
		TimeHorizon:     "intraday",
		Rationale:       rationale,
		RiskLevel:       assessRiskLevel(pred.Confidence, riskReward),
		ModelVersion:    modelVersion,
	}
}

func (g *Generator) targetPrice(price float64, direction string, confidence float64) float64 {
	move := targetMovePerConfidence * confidence
	switch direction {
	case "up":
		return price * (1 + move)
	case "down":
		return price * (1 - move)
	default:
		return price
	}
}

func (g *Generator) stopLoss(price float64, direction string) float64 {
	switch direction {
	case "up":
		return price * (1 - stopLossPercent)
	case "down":
		return price * (1 + stopLossPercent)
	default:
		return price
	}
}

// positionSize scales the maximum position with confidence.
func (g *Generator) positionSize(confidence float64) float64 {
	return g.MaxPositionSize * confidence
}

func assessRiskLevel(confidence, riskReward float64) string {
	switch {
	case confidence > 0.8 && riskReward > 2.0:
		return "low"
	case confidence > 0.6 && riskReward > 1.5:
		return "medium"
	default:
		return "high"
	}
}

// Filter keeps signals with at least minRiskReward.
func Filter(signals []*Signal, minRiskReward float64) []*Signal {
	out := make([]*Signal, 0, len(signals))
	for _, s := range signals {
		if s.RiskRewardRatio >= minRiskReward {
			out = append(out, s)
		}
	}
	return out
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
