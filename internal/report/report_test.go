package report

import (
	"os"
	"strings"
	"testing"

	"liquiditysim/internal/model"
)

func testRecord() model.SimulationRecord {
	return model.SimulationRecord{
		TokenSymbol:        "HEX",
		Action:             model.ActionBuy,
		TotalLiquidityUSD:  100_000,
		ReserveQuoteBefore: 50_000,
		ReserveBaseBefore:  5_000_000,
		ReserveQuoteAfter:  60_000,
		ReserveBaseAfter:   4_166_666.6666666665,
		AmountIn:           10_000,
		AmountOut:          833_333.3333333335,
		OldPrice:           0.01,
		NewPrice:           0.0144,
		PriceChangeRatio:   1.44,
		SlippagePercent:    16.666666666666664,
		XFactor:            1.44,
		SimulatedAt:        "2024-01-01T00:00:00Z",
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(0.0042); got != "$0.00420000" {
		t.Fatalf("small price: got %q", got)
	}
	if got := FormatPrice(1234.5); got != "$1234.50" {
		t.Fatalf("large price: got %q", got)
	}
	if got := FormatPrice(1); got != "$1.00" {
		t.Fatalf("boundary price: got %q", got)
	}
}

func TestFormatTextBuy(t *testing.T) {
	text := FormatText(testRecord())

	for _, want := range []string{
		"SIMULATION RESULTS FOR HEX",
		"POOL STATE BEFORE:",
		"USD in pool: $50,000.00",
		"Tokens in pool: 5,000,000.00000000 HEX",
		"Action: Buy",
		"USD Amount: $10,000.00",
		"Tokens Received: 833,333.33333333 HEX",
		"USD Spent: $10,000.00",
		"Slippage: 16.666667%",
		"New Price: $0.01440000",
		"Price Change: 44.000000%",
		"X Factor: 1.440000x",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q:\n%s", want, text)
		}
	}
}

func TestFormatTextSell(t *testing.T) {
	rec := testRecord()
	rec.Action = model.ActionSell
	rec.AmountIn = 1_000_000
	rec.AmountOut = 9_800

	text := FormatText(rec)
	for _, want := range []string{
		"Action: Sell",
		"USD Received: $9,800.00",
		"Tokens Spent: 1,000,000.00000000 HEX",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q:\n%s", want, text)
		}
	}
}

func TestFormatTokenInfo(t *testing.T) {
	text := FormatTokenInfo("hex", model.TokenData{
		TokenSymbol:       "HEX",
		TotalLiquidityUSD: 100_000,
		PriceUSD:          0.01,
	})

	for _, want := range []string{
		"CURRENT TOKEN INFO:",
		"Total liquidity for hex: $100,000.00",
		"Current HEX price: $0.01000000",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("token info missing %q:\n%s", want, text)
		}
	}
}

func TestHistoryWriterAppends(t *testing.T) {
	dir := t.TempDir()
	writer := NewHistoryWriter(dir)

	rec := testRecord()
	path, err := writer.Append(rec)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := writer.Append(rec); err != nil {
		t.Fatalf("second append: %v", err)
	}

	if path != writer.Path("HEX") {
		t.Fatalf("path mismatch: %q != %q", path, writer.Path("HEX"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if got := strings.Count(string(data), "SIMULATION RESULTS FOR HEX"); got != 2 {
		t.Fatalf("history entries: got %d want 2", got)
	}
	if !strings.Contains(string(data), "Run at 2024-01-01T00:00:00Z") {
		t.Fatalf("history missing run timestamp:\n%s", data)
	}
}
