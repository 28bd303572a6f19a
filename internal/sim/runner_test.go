package sim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"liquiditysim/internal/amm"
	"liquiditysim/internal/market"
	"liquiditysim/internal/model"
	"liquiditysim/internal/storage"
)

type stubSource struct {
	data model.TokenData
	err  error
}

func (s *stubSource) TokenData(_ context.Context, _ string) (model.TokenData, error) {
	return s.data, s.err
}

type memorySink struct {
	records []model.SimulationRecord
}

func (m *memorySink) PutSimulations(_ context.Context, records []model.SimulationRecord) error {
	m.records = append(m.records, records...)
	return nil
}

func testTokenData() model.TokenData {
	return model.TokenData{
		TokenSymbol:       "HEX",
		TokenAddress:      "0xabc",
		TotalLiquidityUSD: 100_000,
		PriceUSD:          0.01,
		PairCount:         2,
	}
}

func TestRunnerBuy(t *testing.T) {
	sink := &memorySink{}
	runner := NewRunner(RunConfig{
		TokenName:    "hex",
		TokenAddress: "0xabc",
		AmountUSD:    10_000,
	}, &stubSource{data: testTokenData()}, []storage.Storage{sink}, nil, nil)

	rec, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if rec.Action != model.ActionBuy {
		t.Fatalf("action: got %q want buy", rec.Action)
	}
	if rec.ReserveQuoteBefore != 50_000 || rec.ReserveQuoteAfter != 60_000 {
		t.Fatalf("quote reserves: %v -> %v", rec.ReserveQuoteBefore, rec.ReserveQuoteAfter)
	}
	if math.Abs(rec.PriceChangeRatio-1.44) > 1e-9 {
		t.Fatalf("ratio: got %v want 1.44", rec.PriceChangeRatio)
	}
	if rec.XFactor != rec.PriceChangeRatio {
		t.Fatalf("x factor for a buy should equal the ratio: %v != %v", rec.XFactor, rec.PriceChangeRatio)
	}
	if len(sink.records) != 1 {
		t.Fatalf("stored records: got %d want 1", len(sink.records))
	}
	if rec.SimulatedAt == "" {
		t.Fatalf("simulated_at not set")
	}
}

func TestRunnerSellOnNegativeAmount(t *testing.T) {
	runner := NewRunner(RunConfig{
		TokenName:    "hex",
		TokenAddress: "0xabc",
		AmountUSD:    -10_000,
	}, &stubSource{data: testTokenData()}, nil, nil, nil)

	rec, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if rec.Action != model.ActionSell {
		t.Fatalf("action: got %q want sell", rec.Action)
	}
	if rec.NewPrice >= rec.OldPrice {
		t.Fatalf("sell did not lower price: %v >= %v", rec.NewPrice, rec.OldPrice)
	}
	if rec.XFactor >= 0 {
		t.Fatalf("x factor for a sell should be negative: %v", rec.XFactor)
	}
}

func TestRunnerRejectsZeroAmount(t *testing.T) {
	runner := NewRunner(RunConfig{
		TokenAddress: "0xabc",
		AmountUSD:    0,
	}, &stubSource{data: testTokenData()}, nil, nil, nil)

	if _, err := runner.Run(context.Background()); !errors.Is(err, amm.ErrInvalidInput) {
		t.Fatalf("zero amount: got %v want ErrInvalidInput", err)
	}
}

func TestRunnerSurfacesSourceFailure(t *testing.T) {
	sourceErr := fmt.Errorf("%w: no pairs", market.ErrNoMarketData)
	runner := NewRunner(RunConfig{
		TokenAddress: "0xabc",
		AmountUSD:    100,
	}, &stubSource{err: sourceErr}, nil, nil, nil)

	if _, err := runner.Run(context.Background()); !errors.Is(err, market.ErrNoMarketData) {
		t.Fatalf("source failure: got %v want ErrNoMarketData", err)
	}
}

func TestSweeperUsesFreshPoolPerAmount(t *testing.T) {
	sink := &memorySink{}
	sweeper := NewSweeper(SweepConfig{
		TokenName:    "hex",
		TokenAddress: "0xabc",
		AmountsUSD:   []float64{10_000, 10_000, -10_000},
	}, &stubSource{data: testTokenData()}, []storage.Storage{sink}, nil)

	records, err := sweeper.Run(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records: got %d want 3", len(records))
	}

	// Equal amounts against independent pools must produce equal results.
	if records[0].NewPrice != records[1].NewPrice {
		t.Fatalf("pools shared state across sweep steps: %v != %v", records[0].NewPrice, records[1].NewPrice)
	}
	if records[2].Action != model.ActionSell {
		t.Fatalf("negative amount action: got %q want sell", records[2].Action)
	}
	if len(sink.records) != 3 {
		t.Fatalf("stored records: got %d want 3", len(sink.records))
	}
}
