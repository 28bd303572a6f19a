package market

import "errors"

// ErrNoMarketData means the aggregator returned no usable pairs for the
// token, so there is no liquidity or price to construct a pool from. It is
// distinct from an invalid-input rejection: the failure originates in the
// external data, not in the caller's arguments.
var ErrNoMarketData = errors.New("no usable market data")
