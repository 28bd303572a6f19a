package amm

import "errors"

var (
	// ErrInvalidInput marks a rejected precondition: non-positive liquidity,
	// non-positive price, or a zero/negative/non-finite trade amount.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerate marks a computed reserve or output that came out
	// non-positive or non-finite. Validated inputs should never trigger it.
	ErrDegenerate = errors.New("degenerate pool math")
)
