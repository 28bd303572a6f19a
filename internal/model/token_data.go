package model

// TokenData is the aggregate market view the simulator is constructed from:
// total observed USD liquidity across pairs and the current unit price.
type TokenData struct {
	TokenSymbol       string  `json:"token_symbol"`
	TokenAddress      string  `json:"token_address"`
	TotalLiquidityUSD float64 `json:"total_liquidity_usd"`
	PriceUSD          float64 `json:"price_usd"`
	PairCount         int     `json:"pair_count"`
}
