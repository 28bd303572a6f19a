package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"liquiditysim/internal/model"
)

// WritePairsCSV writes a per-pair liquidity breakdown. Callers are expected
// to pass pairs already filtered to positive liquidity and sorted by DEX.
func WritePairsCSV(path string, pairs []model.Pair) error {
	if len(pairs) == 0 {
		return fmt.Errorf("no pairs to write")
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{"dexId", "pairAddress", "baseTokenSymbol", "quoteTokenSymbol", "liquidityUsd"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, pair := range pairs {
		row := []string{
			pair.DexID,
			pair.PairAddress,
			pair.BaseToken.Symbol,
			pair.QuoteToken.Symbol,
			strconv.FormatFloat(pair.Liquidity.USD, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}
