// Package pulse implements the core pipeline: pair selection, pulse scoring,
// result assembly and batch orchestration.
package pulse

import "github.com/vesper-eve/token-pulse/internal/models"

// ScorePair computes the integer activity score for a pair.
// Tiers accumulate: volume, transactions, turnover, then momentum.
// The two momentum guards are independent conditions, not branches of
// one chain.
func ScorePair(p *models.Pair) int {
	vol := p.Volume24h()
	mcap := p.MarketCapUSD()
	change := p.Change24h()
	txns := p.Txns24h()

	volRatio := 0.0
	if mcap > 0 {
		volRatio = vol / mcap
	}

	score := 0

	switch {
	case vol > 10000:
		score += 3
	case vol > 1000:
		score += 2
	case vol > 100:
		score += 1
	}

	switch {
	case txns > 50:
		score += 2
	case txns > 10:
		score += 1
	}

	switch {
	case volRatio > 0.1:
		score += 2
	case volRatio > 0.01:
		score += 1
	}

	if change > 20 {
		score += 1
	}
	if change < -50 {
		score -= 2
	}

	return score
}

// CalculatePulse maps a pair to its health label. A nil pair is dead.
func CalculatePulse(p *models.Pair) models.Pulse {
	if p == nil {
		return models.PulseDead
	}
	return labelFor(ScorePair(p))
}

// labelFor maps a score to its label; total over all integers.
func labelFor(score int) models.Pulse {
	switch {
	case score >= 6:
		return models.PulseStrong
	case score >= 4:
		return models.PulseStable
	case score >= 2:
		return models.PulseWeak
	case score >= 0:
		return models.PulseCritical
	default:
		return models.PulseDead
	}
}
