package model

// SimulationRecord is the flattened, persistable outcome of one simulation
// run: the market data the pool was built from, the pool state on both sides
// of the trade, and the trade result with derived metrics.
type SimulationRecord struct {
	TokenSymbol       string  `json:"token_symbol"`
	TokenAddress      string  `json:"token_address"`
	Action            string  `json:"action"`
	TotalLiquidityUSD float64 `json:"total_liquidity_usd"`

	ReserveQuoteBefore float64 `json:"reserve_quote_before"`
	ReserveBaseBefore  float64 `json:"reserve_base_before"`
	ReserveQuoteAfter  float64 `json:"reserve_quote_after"`
	ReserveBaseAfter   float64 `json:"reserve_base_after"`

	AmountIn         float64 `json:"amount_in"`
	AmountOut        float64 `json:"amount_out"`
	OldPrice         float64 `json:"old_price"`
	NewPrice         float64 `json:"new_price"`
	PriceChangeRatio float64 `json:"price_change_ratio"`
	SlippagePercent  float64 `json:"slippage_percent"`
	XFactor          float64 `json:"x_factor"`

	SimulatedAt string `json:"simulated_at"`
}
