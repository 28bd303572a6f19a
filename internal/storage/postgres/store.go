package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"liquiditysim/internal/model"
)

// Store provides Postgres persistence for simulation records.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutSimulations inserts simulation records in one batch.
func (s *Store) PutSimulations(ctx context.Context, records []model.SimulationRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
			INSERT INTO simulations (
				token_symbol, token_address, action, total_liquidity_usd,
				reserve_quote_before, reserve_base_before, reserve_quote_after, reserve_base_after,
				amount_in, amount_out, old_price, new_price,
				price_change_ratio, slippage_percent, x_factor, simulated_at, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,now())
		`,
			rec.TokenSymbol,
			rec.TokenAddress,
			rec.Action,
			rec.TotalLiquidityUSD,
			rec.ReserveQuoteBefore,
			rec.ReserveBaseBefore,
			rec.ReserveQuoteAfter,
			rec.ReserveBaseAfter,
			rec.AmountIn,
			rec.AmountOut,
			rec.OldPrice,
			rec.NewPrice,
			rec.PriceChangeRatio,
			rec.SlippagePercent,
			rec.XFactor,
			rec.SimulatedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
