package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "sim",
		Short:        "AMM liquidity impact simulator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	simulateCmd := &cobra.Command{
		Use:   "simulate <name> <token_address>",
		Short: "Simulate the price impact of a single trade",
		Args:  cobra.ExactArgs(2),
		RunE:  runSimulate,
	}

	simulateCmd.Flags().Float64("amount", 0, "USD trade size (positive for buy, negative for sell)")
	simulateCmd.Flags().String("api-url", "https://api.dexscreener.com", "DEX aggregator API base URL")
	simulateCmd.Flags().String("rpc", "", "EVM RPC URL (enables on-chain reserve source)")
	simulateCmd.Flags().String("pair", "", "pair contract address for the on-chain reserve source")
	simulateCmd.Flags().String("history-dir", ".", "directory for the per-token history file")
	simulateCmd.Flags().String("out", "", "optional JSONL output path for simulation records")
	simulateCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for simulation records")
	simulateCmd.Flags().Duration("timeout", 15*time.Second, "HTTP timeout")
	simulateCmd.Flags().Int("max-retries", 3, "maximum retry attempts")
	simulateCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	simulateCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(simulateCmd)

	pairsCmd := &cobra.Command{
		Use:   "pairs <token_address>",
		Short: "Dump the per-pair liquidity breakdown for a token",
		Args:  cobra.ExactArgs(1),
		RunE:  runPairs,
	}

	pairsCmd.Flags().String("api-url", "https://api.dexscreener.com", "DEX aggregator API base URL")
	pairsCmd.Flags().String("csv", "", "CSV output path (defaults to <symbol>-pairs.csv)")
	pairsCmd.Flags().Duration("timeout", 15*time.Second, "HTTP timeout")
	pairsCmd.Flags().Int("max-retries", 3, "maximum retry attempts")
	pairsCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	pairsCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(pairsCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep <name> <token_address>",
		Short: "Simulate a series of trade sizes against one market snapshot",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}

	sweepCmd.Flags().StringSlice("amounts", nil, "USD trade sizes (comma-separated, sign picks direction)")
	sweepCmd.Flags().String("api-url", "https://api.dexscreener.com", "DEX aggregator API base URL")
	sweepCmd.Flags().String("rpc", "", "EVM RPC URL (enables on-chain reserve source)")
	sweepCmd.Flags().String("pair", "", "pair contract address for the on-chain reserve source")
	sweepCmd.Flags().String("out", "", "optional JSONL output path for simulation records")
	sweepCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for simulation records")
	sweepCmd.Flags().Duration("timeout", 15*time.Second, "HTTP timeout")
	sweepCmd.Flags().Int("max-retries", 3, "maximum retry attempts")
	sweepCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	sweepCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(sweepCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
