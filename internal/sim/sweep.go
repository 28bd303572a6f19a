package sim

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"liquiditysim/internal/model"
	"liquiditysim/internal/storage"
)

// SweepConfig holds settings for a batch impact sweep.
type SweepConfig struct {
	TokenName    string
	TokenAddress string
	// AmountsUSD are signed trade sizes, each simulated against its own
	// fresh pool so runs never interleave on shared state.
	AmountsUSD []float64
}

// Sweeper runs a series of independent simulations over one market snapshot
// to chart how price impact grows with trade size.
type Sweeper struct {
	cfg    SweepConfig
	source TokenDataSource
	sinks  []storage.Storage
	logger *zap.Logger
}

func NewSweeper(cfg SweepConfig, source TokenDataSource, sinks []storage.Storage, logger *zap.Logger) *Sweeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sweeper{cfg: cfg, source: source, sinks: sinks, logger: logger}
}

// Run fetches market data once and simulates every configured amount.
func (s *Sweeper) Run(ctx context.Context) ([]model.SimulationRecord, error) {
	if s.source == nil {
		return nil, fmt.Errorf("token data source is nil")
	}
	if len(s.cfg.AmountsUSD) == 0 {
		return nil, fmt.Errorf("at least one trade amount is required")
	}

	data, err := s.source.TokenData(ctx, s.cfg.TokenAddress)
	if err != nil {
		return nil, fmt.Errorf("fetch token data: %w", err)
	}

	s.logger.Info("sweep start",
		zap.String("token", data.TokenSymbol),
		zap.Float64("total_liquidity_usd", data.TotalLiquidityUSD),
		zap.Float64("price_usd", data.PriceUSD),
		zap.Int("amounts", len(s.cfg.AmountsUSD)),
	)

	records := make([]model.SimulationRecord, 0, len(s.cfg.AmountsUSD))
	for _, amount := range s.cfg.AmountsUSD {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := Simulate(data, amount)
		if err != nil {
			return nil, fmt.Errorf("simulate amount %v: %w", amount, err)
		}
		records = append(records, rec)

		s.logger.Info("sweep step",
			zap.Float64("amount_usd", amount),
			zap.Float64("price_change_ratio", rec.PriceChangeRatio),
			zap.Float64("slippage_percent", rec.SlippagePercent),
		)
	}

	for _, sink := range s.sinks {
		if err := sink.PutSimulations(ctx, records); err != nil {
			return nil, fmt.Errorf("store sweep records: %w", err)
		}
	}

	return records, nil
}
