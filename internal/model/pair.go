package model

// TokenInfo identifies one side of a trading pair.
type TokenInfo struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// PairLiquidity is the liquidity block of a pair as reported by the
// aggregator API.
type PairLiquidity struct {
	USD   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// Pair is one trading pair record from the DEX aggregator API. PriceUSD is
// kept as a string because that is how the API quotes it.
type Pair struct {
	ChainID     string        `json:"chainId"`
	DexID       string        `json:"dexId"`
	PairAddress string        `json:"pairAddress"`
	BaseToken   TokenInfo     `json:"baseToken"`
	QuoteToken  TokenInfo     `json:"quoteToken"`
	PriceUSD    string        `json:"priceUsd"`
	Liquidity   PairLiquidity `json:"liquidity"`
}

// PairsResponse is the top-level token lookup payload.
type PairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}
