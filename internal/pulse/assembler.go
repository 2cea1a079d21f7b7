package pulse

import (
	"time"

	"github.com/vesper-eve/token-pulse/internal/models"
)

// noPairsMessage is returned for tokens the aggregator knows no venues for.
const noPairsMessage = "No trading pairs found"

// BuildResult assembles the PulseResult for one address from its fetched
// pair list. An empty list is a normal not-found outcome, not an error.
func BuildResult(address string, pairs []models.Pair) *models.PulseResult {
	if len(pairs) == 0 {
		return &models.PulseResult{
			Address: address,
			Found:   false,
			Pulse:   models.PulseDead,
			Message: noPairsMessage,
		}
	}

	main := SelectMainPair(pairs)

	return &models.PulseResult{
		Address: address,
		Found:   true,
		Pulse:   CalculatePulse(main),
		Token: &models.TokenInfo{
			Name:   main.BaseToken.Name,
			Symbol: main.BaseToken.Symbol,
		},
		Stats: &models.TokenStats{
			Price:     main.PriceUSD(),
			Mcap:      main.MarketCapUSD(),
			Volume24h: main.Volume24h(),
			Change24h: main.Change24h(),
			Txns24h:   main.Txns24h(),
			Liquidity: main.Liquidity.Usd,
		},
		Pair: &models.PairInfo{
			Dex:   main.DexID,
			Chain: main.ChainID,
			URL:   main.URL,
		},
		PairCount: len(pairs),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
