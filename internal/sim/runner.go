package sim

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"liquiditysim/internal/amm"
	"liquiditysim/internal/model"
	"liquiditysim/internal/report"
	"liquiditysim/internal/storage"
)

// TokenDataSource supplies the aggregate market view a pool is built from.
type TokenDataSource interface {
	TokenData(ctx context.Context, tokenAddress string) (model.TokenData, error)
}

// RunConfig holds runtime settings for one simulation.
type RunConfig struct {
	TokenName    string
	TokenAddress string
	// AmountUSD is the signed trade size: positive buys, negative sells.
	AmountUSD float64
}

// Runner fetches market data, runs one trade against a fresh pool, and
// hands the record to the configured sinks.
type Runner struct {
	cfg     RunConfig
	source  TokenDataSource
	sinks   []storage.Storage
	history *report.HistoryWriter
	logger  *zap.Logger
}

// NewRunner builds a Runner with its dependencies. history and sinks may be
// empty when no persistence is wanted.
func NewRunner(cfg RunConfig, source TokenDataSource, sinks []storage.Storage, history *report.HistoryWriter, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		source:  source,
		sinks:   sinks,
		history: history,
		logger:  logger,
	}
}

// Run executes the simulation and returns the resulting record.
func (r *Runner) Run(ctx context.Context) (model.SimulationRecord, error) {
	if r.source == nil {
		return model.SimulationRecord{}, fmt.Errorf("token data source is nil")
	}
	if r.cfg.TokenAddress == "" {
		return model.SimulationRecord{}, fmt.Errorf("token address is required")
	}
	if r.cfg.AmountUSD == 0 || math.IsNaN(r.cfg.AmountUSD) {
		return model.SimulationRecord{}, fmt.Errorf("%w: trade amount must be a non-zero number", amm.ErrInvalidInput)
	}

	data, err := r.source.TokenData(ctx, r.cfg.TokenAddress)
	if err != nil {
		return model.SimulationRecord{}, fmt.Errorf("fetch token data: %w", err)
	}

	r.logger.Info("token data",
		zap.String("token", data.TokenSymbol),
		zap.Float64("total_liquidity_usd", data.TotalLiquidityUSD),
		zap.Float64("price_usd", data.PriceUSD),
		zap.Int("pairs", data.PairCount),
	)

	rec, err := Simulate(data, r.cfg.AmountUSD)
	if err != nil {
		return model.SimulationRecord{}, err
	}

	r.logger.Info("simulation complete",
		zap.String("token", rec.TokenSymbol),
		zap.String("action", rec.Action),
		zap.Float64("old_price", rec.OldPrice),
		zap.Float64("new_price", rec.NewPrice),
		zap.Float64("price_change_ratio", rec.PriceChangeRatio),
		zap.Float64("slippage_percent", rec.SlippagePercent),
		zap.Float64("x_factor", rec.XFactor),
	)

	if r.history != nil {
		path, err := r.history.Append(rec)
		if err != nil {
			return model.SimulationRecord{}, fmt.Errorf("write history: %w", err)
		}
		r.logger.Info("history written", zap.String("path", path))
	}

	for _, sink := range r.sinks {
		if err := sink.PutSimulations(ctx, []model.SimulationRecord{rec}); err != nil {
			return model.SimulationRecord{}, fmt.Errorf("store simulation: %w", err)
		}
	}

	return rec, nil
}

// Simulate builds a fresh pool from the market view and applies one signed
// trade: positive amounts buy, negative amounts sell the magnitude.
func Simulate(data model.TokenData, amountUSD float64) (model.SimulationRecord, error) {
	pool, err := amm.NewPool(data.TotalLiquidityUSD, data.PriceUSD, data.TokenSymbol)
	if err != nil {
		return model.SimulationRecord{}, fmt.Errorf("construct pool: %w", err)
	}

	reserveQuoteBefore := pool.ReserveQuote
	reserveBaseBefore := pool.ReserveBase

	var result model.TradeResult
	if amountUSD > 0 {
		result, err = amm.SimulateBuy(pool, amountUSD)
	} else {
		result, err = amm.SimulateSell(pool, -amountUSD)
	}
	if err != nil {
		return model.SimulationRecord{}, err
	}

	return model.SimulationRecord{
		TokenSymbol:        data.TokenSymbol,
		TokenAddress:       data.TokenAddress,
		Action:             result.Action,
		TotalLiquidityUSD:  data.TotalLiquidityUSD,
		ReserveQuoteBefore: reserveQuoteBefore,
		ReserveBaseBefore:  reserveBaseBefore,
		ReserveQuoteAfter:  pool.ReserveQuote,
		ReserveBaseAfter:   pool.ReserveBase,
		AmountIn:           result.AmountIn,
		AmountOut:          result.AmountOut,
		OldPrice:           result.OldPrice,
		NewPrice:           result.NewPrice,
		PriceChangeRatio:   result.PriceChangeRatio,
		SlippagePercent:    result.SlippagePercent,
		XFactor:            amm.XFactor(result.PriceChangeRatio),
		SimulatedAt:        time.Now().UTC().Format(time.RFC3339),
	}, nil
}
