package model

// Trade action constants.
const (
	ActionBuy  = "buy"
	ActionSell = "sell"
)

// TradeResult describes a single simulated trade against a pool.
//
// For a buy, AmountIn is the quote currency spent and AmountOut the tokens
// received. For a sell, AmountIn is the tokens spent and AmountOut the quote
// currency received.
type TradeResult struct {
	Action           string  `json:"action"`
	TokenSymbol      string  `json:"token_symbol"`
	AmountIn         float64 `json:"amount_in"`
	AmountOut        float64 `json:"amount_out"`
	OldPrice         float64 `json:"old_price"`
	NewPrice         float64 `json:"new_price"`
	PriceChangeRatio float64 `json:"price_change_ratio"`
	SlippagePercent  float64 `json:"slippage_percent"`
}
