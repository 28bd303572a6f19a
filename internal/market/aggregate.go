package market

import (
	"fmt"
	"sort"
	"strconv"

	"liquiditysim/internal/model"
)

// TotalLiquidityUSD sums USD liquidity across pairs, skipping zero and
// negative entries.
func TotalLiquidityUSD(pairs []model.Pair) float64 {
	var total float64
	for _, pair := range pairs {
		if pair.Liquidity.USD > 0 {
			total += pair.Liquidity.USD
		}
	}
	return total
}

// FilterLiquidPairs returns pairs with positive USD liquidity, sorted by DEX
// identifier. This is the view the pair breakdown reports are built from.
func FilterLiquidPairs(pairs []model.Pair) []model.Pair {
	liquid := make([]model.Pair, 0, len(pairs))
	for _, pair := range pairs {
		if pair.Liquidity.USD > 0 {
			liquid = append(liquid, pair)
		}
	}
	sort.SliceStable(liquid, func(i, j int) bool {
		return liquid[i].DexID < liquid[j].DexID
	})
	return liquid
}

// AggregateTokenData reduces raw pairs to the (liquidity, price, symbol)
// triple the simulator is constructed from. The unit price and symbol come
// from the first reported pair, the reference pair by API convention.
func AggregateTokenData(tokenAddress string, pairs []model.Pair) (model.TokenData, error) {
	if len(pairs) == 0 {
		return model.TokenData{}, fmt.Errorf("%w: no pairs for token %s", ErrNoMarketData, tokenAddress)
	}

	total := TotalLiquidityUSD(pairs)
	if total <= 0 {
		return model.TokenData{}, fmt.Errorf("%w: no positive liquidity for token %s", ErrNoMarketData, tokenAddress)
	}

	ref := pairs[0]
	price, err := strconv.ParseFloat(ref.PriceUSD, 64)
	if err != nil {
		return model.TokenData{}, fmt.Errorf("%w: unparseable price %q for token %s", ErrNoMarketData, ref.PriceUSD, tokenAddress)
	}
	if price <= 0 {
		return model.TokenData{}, fmt.Errorf("%w: non-positive price %v for token %s", ErrNoMarketData, price, tokenAddress)
	}

	return model.TokenData{
		TokenSymbol:       ref.BaseToken.Symbol,
		TokenAddress:      tokenAddress,
		TotalLiquidityUSD: total,
		PriceUSD:          price,
		PairCount:         len(pairs),
	}, nil
}
