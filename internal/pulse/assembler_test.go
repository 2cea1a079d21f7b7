package pulse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesper-eve/token-pulse/internal/models"
)

func TestBuildResult_NoPairsIsDeadNotError(t *testing.T) {
	r := BuildResult("0xabc", nil)

	assert.Equal(t, "0xabc", r.Address)
	assert.False(t, r.Found)
	assert.Equal(t, models.PulseDead, r.Pulse)
	assert.Equal(t, "No trading pairs found", r.Message)
	assert.Nil(t, r.Token)
	assert.Nil(t, r.Stats)
	assert.Nil(t, r.Pair)
	assert.Empty(t, r.Timestamp)
}

func TestBuildResult_PopulatesFromMainPair(t *testing.T) {
	pairs := []models.Pair{
		{
			ChainID: "ethereum",
			DexID:   "sushiswap",
			Volume:  models.Volume{H24: 200},
		},
		{
			ChainID:     "ethereum",
			DexID:       "uniswap",
			URL:         "https://dexscreener.com/ethereum/0xpool",
			BaseToken:   models.Token{Name: "Pepe", Symbol: "PEPE"},
			PriceUsd:    "0.0000012",
			Volume:      models.Volume{H24: 15000},
			MarketCap:   50000,
			PriceChange: models.PriceChange{H24: 25},
			Txns:        models.Txns{H24: models.BuysSells{Buys: 30, Sells: 30}},
			Liquidity:   models.Liquidity{Usd: 80000},
		},
	}

	r := BuildResult("0x6982508145454ce325ddbe47a25d4ec3d2311933", pairs)

	require.True(t, r.Found)
	assert.Equal(t, models.PulseStrong, r.Pulse)
	assert.Equal(t, 2, r.PairCount)

	require.NotNil(t, r.Token)
	assert.Equal(t, "Pepe", r.Token.Name)
	assert.Equal(t, "PEPE", r.Token.Symbol)

	require.NotNil(t, r.Stats)
	assert.InDelta(t, 0.0000012, r.Stats.Price, 1e-12)
	assert.Equal(t, float64(50000), r.Stats.Mcap)
	assert.Equal(t, float64(15000), r.Stats.Volume24h)
	assert.Equal(t, float64(25), r.Stats.Change24h)
	assert.Equal(t, 60, r.Stats.Txns24h)
	assert.Equal(t, float64(80000), r.Stats.Liquidity)

	require.NotNil(t, r.Pair)
	assert.Equal(t, "uniswap", r.Pair.Dex)
	assert.Equal(t, "ethereum", r.Pair.Chain)
	assert.Equal(t, "https://dexscreener.com/ethereum/0xpool", r.Pair.URL)

	// Assembly time, RFC3339 UTC
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestBuildResult_DefaultsMalformedPrice(t *testing.T) {
	pairs := []models.Pair{
		{PriceUsd: "not-a-number", Volume: models.Volume{H24: 50}},
	}

	r := BuildResult("0xabc", pairs)

	require.True(t, r.Found)
	assert.Equal(t, float64(0), r.Stats.Price)
}

func TestBuildResult_HeuristicCanStillBeDeadWithPairs(t *testing.T) {
	// A pair exists but its only signal is a heavy dump
	pairs := []models.Pair{
		{PriceChange: models.PriceChange{H24: -80}},
	}

	r := BuildResult("0xabc", pairs)

	assert.True(t, r.Found)
	assert.Equal(t, models.PulseDead, r.Pulse)
	assert.Equal(t, 1, r.PairCount)
}
