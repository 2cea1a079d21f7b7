package models

import "strconv"

// PairsResponse is the aggregator's per-token response envelope
type PairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Pair represents one trading venue reported by the aggregator for a token.
// Numeric fields default to zero when the upstream omits them; all defaulting
// beyond that lives in the accessor methods below.
type Pair struct {
	ChainID       string      `json:"chainId"`
	DexID         string      `json:"dexId"`
	URL           string      `json:"url"`
	PairAddress   string      `json:"pairAddress"`
	BaseToken     Token       `json:"baseToken"`
	QuoteToken    Token       `json:"quoteToken"`
	PriceNative   string      `json:"priceNative"`
	PriceUsd      string      `json:"priceUsd"` // string upstream, may be empty
	Txns          Txns        `json:"txns"`
	Volume        Volume      `json:"volume"`
	PriceChange   PriceChange `json:"priceChange"`
	Liquidity     Liquidity   `json:"liquidity"`
	Fdv           float64     `json:"fdv"`
	MarketCap     float64     `json:"marketCap"`
	PairCreatedAt int64       `json:"pairCreatedAt"`
}

// Token identifies one side of a trading pair
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Txns holds transaction counts per window
type Txns struct {
	M5  BuysSells `json:"m5"`
	H1  BuysSells `json:"h1"`
	H6  BuysSells `json:"h6"`
	H24 BuysSells `json:"h24"`
}

// BuysSells holds buy/sell counts for one window
type BuysSells struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// Volume holds USD volume per window
type Volume struct {
	H24 float64 `json:"h24"`
	H6  float64 `json:"h6"`
	H1  float64 `json:"h1"`
	M5  float64 `json:"m5"`
}

// PriceChange holds percentage price change per window
type PriceChange struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// Liquidity holds pool liquidity figures
type Liquidity struct {
	Usd   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// PriceUSD parses the upstream price string, returning 0 when missing or malformed
func (p *Pair) PriceUSD() float64 {
	v, err := strconv.ParseFloat(p.PriceUsd, 64)
	if err != nil {
		return 0
	}
	return v
}

// MarketCapUSD returns the market capitalization, falling back to the
// fully-diluted valuation when market cap is absent
func (p *Pair) MarketCapUSD() float64 {
	if p.MarketCap > 0 {
		return p.MarketCap
	}
	return p.Fdv
}

// Volume24h returns the 24h USD volume
func (p *Pair) Volume24h() float64 {
	return p.Volume.H24
}

// Change24h returns the signed 24h price change percentage
func (p *Pair) Change24h() float64 {
	return p.PriceChange.H24
}

// Txns24h returns the combined 24h buy and sell count
func (p *Pair) Txns24h() int {
	return p.Txns.H24.Buys + p.Txns.H24.Sells
}
