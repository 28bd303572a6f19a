package amm

import (
	"fmt"

	"liquiditysim/internal/model"
)

// SimulateBuy applies a buy of quoteIn quote currency to the pool: the quote
// reserve grows by quoteIn and the base reserve is solved from the constant
// product. Reserves are mutated only after every intermediate checks out.
func SimulateBuy(p *Pool, quoteIn float64) (model.TradeResult, error) {
	if err := checkAmount(quoteIn); err != nil {
		return model.TradeResult{}, err
	}

	oldPrice := p.Price()

	newReserveQuote := p.ReserveQuote + quoteIn
	newReserveBase := p.invariant / newReserveQuote
	tokensOut := p.ReserveBase - newReserveBase

	if err := checkReserves(newReserveQuote, newReserveBase, tokensOut); err != nil {
		return model.TradeResult{}, err
	}

	// Linear-price expectation, used only to derive slippage.
	expectedTokens := quoteIn / oldPrice
	slippage := slippagePercent(expectedTokens, tokensOut)

	p.ReserveQuote = newReserveQuote
	p.ReserveBase = newReserveBase

	newPrice := p.Price()

	return model.TradeResult{
		Action:           model.ActionBuy,
		TokenSymbol:      p.TokenSymbol,
		AmountIn:         quoteIn,
		AmountOut:        tokensOut,
		OldPrice:         oldPrice,
		NewPrice:         newPrice,
		PriceChangeRatio: newPrice / oldPrice,
		SlippagePercent:  slippage,
	}, nil
}

// SimulateSell applies a sell targeting quoteTarget quote currency of
// proceeds. The token quantity to sell is fixed at the pre-trade price first
// and the actual proceeds are then solved from the constant product, so the
// quote received is always at most the target and slippage is meaningful.
func SimulateSell(p *Pool, quoteTarget float64) (model.TradeResult, error) {
	if err := checkAmount(quoteTarget); err != nil {
		return model.TradeResult{}, err
	}

	oldPrice := p.Price()
	tokensToSell := quoteTarget / oldPrice

	newReserveBase := p.ReserveBase + tokensToSell
	newReserveQuote := p.invariant / newReserveBase
	quoteOut := p.ReserveQuote - newReserveQuote

	if err := checkReserves(newReserveQuote, newReserveBase, quoteOut); err != nil {
		return model.TradeResult{}, err
	}

	slippage := slippagePercent(quoteTarget, quoteOut)

	p.ReserveQuote = newReserveQuote
	p.ReserveBase = newReserveBase

	newPrice := p.Price()

	return model.TradeResult{
		Action:           model.ActionSell,
		TokenSymbol:      p.TokenSymbol,
		AmountIn:         tokensToSell,
		AmountOut:        quoteOut,
		OldPrice:         oldPrice,
		NewPrice:         newPrice,
		PriceChangeRatio: newPrice / oldPrice,
		SlippagePercent:  slippage,
	}, nil
}

func checkAmount(amount float64) error {
	if !isFinite(amount) {
		return fmt.Errorf("%w: trade amount must be a finite number, got %v", ErrInvalidInput, amount)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: trade amount must be positive, got %v", ErrInvalidInput, amount)
	}
	return nil
}

func checkReserves(newQuote, newBase, out float64) error {
	if !isFinite(newQuote) || newQuote <= 0 {
		return fmt.Errorf("%w: new quote reserve %v", ErrDegenerate, newQuote)
	}
	if !isFinite(newBase) || newBase <= 0 {
		return fmt.Errorf("%w: new base reserve %v", ErrDegenerate, newBase)
	}
	if !isFinite(out) || out <= 0 {
		return fmt.Errorf("%w: output amount %v", ErrDegenerate, out)
	}
	return nil
}

func slippagePercent(expected, actual float64) float64 {
	if expected == 0 {
		return 0
	}
	return (expected - actual) / expected * 100
}
