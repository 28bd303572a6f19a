package dex

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"liquiditysim/internal/chain"
	"liquiditysim/internal/market"
	"liquiditysim/internal/model"
)

// PairSide is one token of an on-chain pair with its reserve.
type PairSide struct {
	Address  common.Address
	Symbol   string
	Decimals uint8
	Reserve  *big.Int
}

// PairState is the live state of a constant-product pair read via eth_call.
type PairState struct {
	PairAddress common.Address
	Token0      PairSide
	Token1      PairSide
}

// ReserveSource derives simulator input from a single on-chain pair instead
// of the aggregator API. The side opposite the simulated token is taken as
// the quote leg and assumed to be quoted 1:1 in the reference currency, so
// total liquidity is twice the quote reserve.
type ReserveSource struct {
	client      *chain.Client
	pairAddress common.Address
	logger      *zap.Logger
}

// NewReserveSource builds a ReserveSource for one pair address.
func NewReserveSource(client *chain.Client, pairAddress string, logger *zap.Logger) (*ReserveSource, error) {
	if client == nil {
		return nil, fmt.Errorf("chain client is nil")
	}
	if !common.IsHexAddress(pairAddress) {
		return nil, fmt.Errorf("invalid pair address %q", pairAddress)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReserveSource{
		client:      client,
		pairAddress: common.HexToAddress(pairAddress),
		logger:      logger,
	}, nil
}

// TokenData reads the pair state and reduces it to the aggregate market
// view. Implements sim.TokenDataSource.
func (s *ReserveSource) TokenData(ctx context.Context, tokenAddress string) (model.TokenData, error) {
	if !common.IsHexAddress(tokenAddress) {
		return model.TokenData{}, fmt.Errorf("invalid token address %q", tokenAddress)
	}

	state, err := FetchPairState(ctx, s.client, s.pairAddress)
	if err != nil {
		return model.TokenData{}, fmt.Errorf("%w: %v", market.ErrNoMarketData, err)
	}

	token := common.HexToAddress(tokenAddress)
	var base, quote PairSide
	switch token {
	case state.Token0.Address:
		base, quote = state.Token0, state.Token1
	case state.Token1.Address:
		base, quote = state.Token1, state.Token0
	default:
		return model.TokenData{}, fmt.Errorf("%w: token %s not in pair %s", market.ErrNoMarketData, token.Hex(), s.pairAddress.Hex())
	}

	baseAmount := scaleReserve(base.Reserve, base.Decimals)
	quoteAmount := scaleReserve(quote.Reserve, quote.Decimals)
	if baseAmount <= 0 || quoteAmount <= 0 {
		return model.TokenData{}, fmt.Errorf("%w: empty reserves in pair %s", market.ErrNoMarketData, s.pairAddress.Hex())
	}

	s.logger.Debug("pair state",
		zap.String("pair", s.pairAddress.Hex()),
		zap.String("base", base.Symbol),
		zap.String("quote", quote.Symbol),
		zap.Float64("reserve_base", baseAmount),
		zap.Float64("reserve_quote", quoteAmount),
	)

	return model.TokenData{
		TokenSymbol:       base.Symbol,
		TokenAddress:      tokenAddress,
		TotalLiquidityUSD: 2 * quoteAmount,
		PriceUSD:          quoteAmount / baseAmount,
		PairCount:         1,
	}, nil
}

// FetchPairState loads reserves and token metadata for a pair.
func FetchPairState(ctx context.Context, client *chain.Client, pair common.Address) (PairState, error) {
	if client == nil {
		return PairState{}, fmt.Errorf("chain client is nil")
	}

	pairABI, err := V2PairABI()
	if err != nil {
		return PairState{}, fmt.Errorf("parse pair abi: %w", err)
	}

	values, err := callMethod(ctx, client, pair, pairABI, "getReserves")
	if err != nil {
		return PairState{}, err
	}
	if len(values) < 2 {
		return PairState{}, fmt.Errorf("getReserves returned %d values", len(values))
	}
	reserve0, err := asBigInt(values[0])
	if err != nil {
		return PairState{}, fmt.Errorf("reserve0: %w", err)
	}
	reserve1, err := asBigInt(values[1])
	if err != nil {
		return PairState{}, fmt.Errorf("reserve1: %w", err)
	}

	values, err = callMethod(ctx, client, pair, pairABI, "token0")
	if err != nil {
		return PairState{}, err
	}
	token0, err := asAddress(values[0])
	if err != nil {
		return PairState{}, fmt.Errorf("token0: %w", err)
	}

	values, err = callMethod(ctx, client, pair, pairABI, "token1")
	if err != nil {
		return PairState{}, err
	}
	token1, err := asAddress(values[0])
	if err != nil {
		return PairState{}, fmt.Errorf("token1: %w", err)
	}

	side0, err := fetchTokenSide(ctx, client, token0, reserve0)
	if err != nil {
		return PairState{}, fmt.Errorf("token0 metadata: %w", err)
	}
	side1, err := fetchTokenSide(ctx, client, token1, reserve1)
	if err != nil {
		return PairState{}, fmt.Errorf("token1 metadata: %w", err)
	}

	return PairState{PairAddress: pair, Token0: side0, Token1: side1}, nil
}

func fetchTokenSide(ctx context.Context, client *chain.Client, token common.Address, reserve *big.Int) (PairSide, error) {
	erc20, err := ERC20ABI()
	if err != nil {
		return PairSide{}, fmt.Errorf("parse erc20 abi: %w", err)
	}

	side := PairSide{Address: token, Reserve: reserve}

	values, err := callMethod(ctx, client, token, erc20, "symbol")
	if err != nil {
		return PairSide{}, err
	}
	symbol, ok := values[0].(string)
	if !ok {
		return PairSide{}, fmt.Errorf("symbol unexpected type %T", values[0])
	}
	side.Symbol = strings.TrimSpace(symbol)

	values, err = callMethod(ctx, client, token, erc20, "decimals")
	if err != nil {
		return PairSide{}, err
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return PairSide{}, fmt.Errorf("decimals unexpected type %T", values[0])
	}
	side.Decimals = decimals

	return side, nil
}

func callMethod(ctx context.Context, client *chain.Client, contract common.Address, contractABI abi.ABI, method string) ([]interface{}, error) {
	data, err := contractABI.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	msg := ethereum.CallMsg{To: &contract, Data: data}
	resp, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	values, err := contractABI.Unpack(method, resp)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return values, nil
}

func asBigInt(value interface{}) (*big.Int, error) {
	v, ok := value.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected type %T", value)
	}
	return v, nil
}

func asAddress(value interface{}) (common.Address, error) {
	v, ok := value.(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected type %T", value)
	}
	return v, nil
}

func scaleReserve(reserve *big.Int, decimals uint8) float64 {
	if reserve == nil {
		return 0
	}
	value, _ := new(big.Float).SetInt(reserve).Float64()
	return value / math.Pow10(int(decimals))
}
