package amm

import (
	"fmt"
	"math"
)

// Pool models a constant-product liquidity pool whose reserves are inferred
// from aggregate market data: total USD liquidity is split evenly across the
// quote and base legs at the observed price, which is the only construction
// consistent with a balanced two-asset pool given a single mid-price.
type Pool struct {
	TokenSymbol  string
	ReserveQuote float64
	ReserveBase  float64

	invariant float64
}

// NewPool builds a Pool from total quote-currency liquidity and the current
// unit price. The product of the two reserves is frozen at construction and
// preserved by every subsequent trade.
func NewPool(totalLiquidityQuote, unitPrice float64, tokenSymbol string) (*Pool, error) {
	if !isFinite(totalLiquidityQuote) || totalLiquidityQuote <= 0 {
		return nil, fmt.Errorf("%w: total liquidity must be positive, got %v", ErrInvalidInput, totalLiquidityQuote)
	}
	if !isFinite(unitPrice) || unitPrice <= 0 {
		return nil, fmt.Errorf("%w: unit price must be positive, got %v", ErrInvalidInput, unitPrice)
	}

	reserveQuote := totalLiquidityQuote / 2
	reserveBase := reserveQuote / unitPrice

	p := &Pool{
		TokenSymbol:  tokenSymbol,
		ReserveQuote: reserveQuote,
		ReserveBase:  reserveBase,
		invariant:    reserveQuote * reserveBase,
	}

	if !isFinite(p.invariant) || p.invariant <= 0 {
		return nil, fmt.Errorf("%w: invariant %v from liquidity %v price %v", ErrDegenerate, p.invariant, totalLiquidityQuote, unitPrice)
	}

	return p, nil
}

// Price returns the current quote-per-base price. It never mutates the pool.
func (p *Pool) Price() float64 {
	return p.ReserveQuote / p.ReserveBase
}

// Invariant returns the constant product frozen at construction.
func (p *Pool) Invariant() float64 {
	return p.invariant
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
