package models

// Pulse is the coarse health label derived from a token's trading activity
type Pulse string

const (
	PulseStrong   Pulse = "strong"
	PulseStable   Pulse = "stable"
	PulseWeak     Pulse = "weak"
	PulseCritical Pulse = "critical"
	PulseDead     Pulse = "dead"
	PulseError    Pulse = "error"
)

// PulseResult is the per-token output record.
// token/stats/pair are present only when Found is true; Timestamp and
// PairCount are likewise only set on found results.
type PulseResult struct {
	Address   string      `json:"address"`
	Found     bool        `json:"found"`
	Pulse     Pulse       `json:"pulse"`
	Token     *TokenInfo  `json:"token,omitempty"`
	Stats     *TokenStats `json:"stats,omitempty"`
	Pair      *PairInfo   `json:"pair,omitempty"`
	PairCount int         `json:"pairCount,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// TokenInfo identifies the base token of the selected pair
type TokenInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// TokenStats holds the selected pair's trading metrics
type TokenStats struct {
	Price     float64 `json:"price"`
	Mcap      float64 `json:"mcap"`
	Volume24h float64 `json:"volume24h"`
	Change24h float64 `json:"change24h"`
	Txns24h   int     `json:"txns24h"`
	Liquidity float64 `json:"liquidity"`
}

// PairInfo identifies the trading venue the stats came from
type PairInfo struct {
	Dex   string `json:"dex"`
	Chain string `json:"chain"`
	URL   string `json:"url"`
}
