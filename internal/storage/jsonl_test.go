package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"liquiditysim/internal/model"
)

func testRecords() []model.SimulationRecord {
	return []model.SimulationRecord{
		{
			TokenSymbol:      "HEX",
			Action:           model.ActionBuy,
			AmountIn:         10_000,
			AmountOut:        833_333.33,
			OldPrice:         0.01,
			NewPrice:         0.0144,
			PriceChangeRatio: 1.44,
			SimulatedAt:      "2024-01-01T00:00:00Z",
		},
		{
			TokenSymbol:      "HEX",
			Action:           model.ActionSell,
			AmountIn:         1_000_000,
			AmountOut:        9_800,
			OldPrice:         0.01,
			NewPrice:         0.0096,
			PriceChangeRatio: 0.96,
			SimulatedAt:      "2024-01-01T00:01:00Z",
		},
	}
}

func TestJsonlStorageAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "simulations.jsonl")
	sink := NewJsonlStorage(path)

	records := testRecords()
	if err := sink.PutSimulations(context.Background(), records[:1]); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := sink.PutSimulations(context.Background(), records[1:]); err != nil {
		t.Fatalf("second put: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	var lines []model.SimulationRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec model.SimulationRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("parse line: %v", err)
		}
		lines = append(lines, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("lines: got %d want 2", len(lines))
	}
	if lines[0].Action != model.ActionBuy || lines[1].Action != model.ActionSell {
		t.Fatalf("actions out of order: %q, %q", lines[0].Action, lines[1].Action)
	}
}

func TestJsonlStorageSkipsEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulations.jsonl")
	sink := NewJsonlStorage(path)

	if err := sink.PutSimulations(context.Background(), nil); err != nil {
		t.Fatalf("empty put: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file created for empty batch")
	}
}

func TestWritePairsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.csv")
	pairs := []model.Pair{
		{
			DexID:       "9mm",
			PairAddress: "0x2222",
			BaseToken:   model.TokenInfo{Symbol: "HEX"},
			QuoteToken:  model.TokenInfo{Symbol: "DAI"},
			Liquidity:   model.PairLiquidity{USD: 40_000},
		},
		{
			DexID:       "pulsex",
			PairAddress: "0x1111",
			BaseToken:   model.TokenInfo{Symbol: "HEX"},
			QuoteToken:  model.TokenInfo{Symbol: "WPLS"},
			Liquidity:   model.PairLiquidity{USD: 60_000},
		},
	}

	if err := WritePairsCSV(path, pairs); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines: got %d want 3", len(lines))
	}
	if lines[0] != "dexId,pairAddress,baseTokenSymbol,quoteTokenSymbol,liquidityUsd" {
		t.Fatalf("header mismatch: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "9mm,0x2222,HEX,DAI,40000.00") {
		t.Fatalf("first row mismatch: %q", lines[1])
	}
}

func TestWritePairsCSVRejectsEmpty(t *testing.T) {
	if err := WritePairsCSV(filepath.Join(t.TempDir(), "pairs.csv"), nil); err == nil {
		t.Fatalf("expected error for empty pairs")
	}
}
