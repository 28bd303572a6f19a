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
	"liquiditysim/internal/report"
	"liquiditysim/internal/storage"
)

func runPairs(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPairs(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tokenAddress := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := market.NewClient(market.ClientConfig{
		BaseURL:      cfg.APIURL,
		Timeout:      cfg.Timeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	}, logger)

	pairs, err := client.Pairs(ctx, tokenAddress)
	if err != nil {
		return err
	}

	data, err := market.AggregateTokenData(tokenAddress, pairs)
	if err != nil {
		return err
	}

	liquid := market.FilterLiquidPairs(pairs)

	csvPath := cfg.CSVOut
	if csvPath == "" {
		csvPath = fmt.Sprintf("%s-pairs.csv", data.TokenSymbol)
	}

	if err := storage.WritePairsCSV(csvPath, liquid); err != nil {
		return err
	}

	logger.Info("pairs written",
		zap.String("token", data.TokenSymbol),
		zap.Int("pairs", len(liquid)),
		zap.Float64("total_liquidity_usd", data.TotalLiquidityUSD),
		zap.String("csv", csvPath),
	)

	fmt.Print(report.FormatTokenInfo(data.TokenSymbol, data))
	fmt.Printf("Pair breakdown for %d pairs written to %s\n", len(liquid), csvPath)

	return nil
}
