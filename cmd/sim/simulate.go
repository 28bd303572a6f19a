package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"liquiditysim/internal/chain"
	"liquiditysim/internal/config"
	"liquiditysim/internal/dex"
	"liquiditysim/internal/market"
	"liquiditysim/internal/model"
	"liquiditysim/internal/report"
	"liquiditysim/internal/sim"
	"liquiditysim/internal/storage"
	"liquiditysim/internal/storage/postgres"
)

func runSimulate(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSimulate(cfgFile, cmd.Flags())
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

	if cfg.AmountUSD == 0 {
		return fmt.Errorf("amount is required and cannot be zero")
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

	runner := sim.NewRunner(sim.RunConfig{
		TokenName:    tokenName,
		TokenAddress: tokenAddress,
		AmountUSD:    cfg.AmountUSD,
	}, source, sinks, report.NewHistoryWriter(cfg.HistoryDir), logger)

	logger.Info("simulate start",
		zap.String("token_name", tokenName),
		zap.String("token_address", tokenAddress),
		zap.Float64("amount_usd", cfg.AmountUSD),
	)

	rec, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(report.FormatTokenInfo(tokenName, model.TokenData{
		TokenSymbol:       rec.TokenSymbol,
		TokenAddress:      rec.TokenAddress,
		TotalLiquidityUSD: rec.TotalLiquidityUSD,
		PriceUSD:          rec.OldPrice,
	}))
	fmt.Println()
	fmt.Print(report.FormatText(rec))

	return nil
}

// buildSource picks the on-chain reserve source when both an RPC URL and a
// pair address are given, the aggregator API otherwise.
func buildSource(ctx context.Context, rpcURL, pairAddress string, clientCfg market.ClientConfig, logger *zap.Logger) (sim.TokenDataSource, func(), error) {
	if rpcURL != "" && pairAddress != "" {
		chainClient, err := chain.NewClient(ctx, rpcURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect rpc: %w", err)
		}
		chainID, err := chainClient.GetChainID(ctx)
		if err != nil {
			chainClient.Close()
			return nil, nil, fmt.Errorf("get chain id: %w", err)
		}
		logger.Info("rpc connected",
			zap.String("rpc", rpcURL),
			zap.String("chain_id", chainID.String()),
			zap.String("pair", pairAddress),
		)
		source, err := dex.NewReserveSource(chainClient, pairAddress, logger)
		if err != nil {
			chainClient.Close()
			return nil, nil, err
		}
		return source, chainClient.Close, nil
	}

	return market.NewClient(clientCfg, logger), func() {}, nil
}

func buildSinks(ctx context.Context, jsonlPath, pgDSN string) ([]storage.Storage, func(), error) {
	var sinks []storage.Storage
	closers := func() {}

	if jsonlPath != "" {
		sinks = append(sinks, storage.NewJsonlStorage(jsonlPath))
	}

	if pgDSN != "" {
		store, err := postgres.NewStore(ctx, pgDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		sinks = append(sinks, store)
		closers = store.Close
	}

	return sinks, closers, nil
}
