package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"liquiditysim/internal/config"
	"liquiditysim/internal/market"
	"liquiditysim/internal/sim"
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSweep(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tokenName := args[0]
	tokenAddress := args[1]

	if len(cfg.Amounts) == 0 {
		return fmt.Errorf("at least one amount is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := buildSource(ctx, cfg.RPCURL, cfg.PairAddress, market.ClientConfig{
		BaseURL:      cfg.APIURL,
		Timeout:      cfg.Timeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	}, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	sinks, closeSinks, err := buildSinks(ctx, cfg.Out, cfg.PGDSN)
	if err != nil {
		return err
	}
	defer closeSinks()

	sweeper := sim.NewSweeper(sim.SweepConfig{
		TokenName:    tokenName,
		TokenAddress: tokenAddress,
		AmountsUSD:   cfg.Amounts,
	}, source, sinks, logger)

	records, err := sweeper.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("sweep complete",
		zap.String("token_name", tokenName),
		zap.String("token_address", tokenAddress),
		zap.Int("records", len(records)),
	)

	fmt.Printf("\n%-14s %-6s %-14s %-14s %-12s %-10s\n", "AMOUNT USD", "SIDE", "NEW PRICE", "IMPACT RATIO", "SLIPPAGE %", "X FACTOR")
	for i, rec := range records {
		amount := cfg.Amounts[i]
		fmt.Printf("%-14.2f %-6s %-14.8f %-14.6f %-12.6f %-10.4f\n",
			amount, rec.Action, rec.NewPrice, rec.PriceChangeRatio, rec.SlippagePercent, rec.XFactor)
	}

	return nil
}
