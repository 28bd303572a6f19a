package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"liquiditysim/internal/model"
)

// DefaultBaseURL is the public DEX aggregator endpoint. No API key needed.
const DefaultBaseURL = "https://api.dexscreener.com"

// ClientConfig holds HTTP and retry settings for the market data client.
type ClientConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// Client fetches trading pair data from the DEX aggregator API.
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Client. Zero-value config fields fall back to defaults.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Pairs returns all trading pairs for the token address, retrying transient
// failures with exponential backoff.
func (c *Client) Pairs(ctx context.Context, tokenAddress string) ([]model.Pair, error) {
	if tokenAddress == "" {
		return nil, fmt.Errorf("token address is required")
	}

	var pairs []model.Pair
	err := withRetry(ctx, c.logger, c.cfg.MaxRetries, c.cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		pairs, err = c.fetchPairs(ctx, tokenAddress)
		if err != nil {
			c.logger.Warn("pairs fetch failed", zap.String("token", tokenAddress), zap.Error(err))
		}
		return err
	})
	return pairs, err
}

func (c *Client) fetchPairs(ctx context.Context, tokenAddress string) ([]model.Pair, error) {
	endpoint := fmt.Sprintf("%s/latest/dex/tokens/%s", c.cfg.BaseURL, url.PathEscape(tokenAddress))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pairs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch pairs: unexpected status %d", resp.StatusCode)
	}

	var payload model.PairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode pairs response: %w", err)
	}

	return payload.Pairs, nil
}

// TokenData fetches pairs and reduces them to the aggregate market view.
// Implements sim.TokenDataSource.
func (c *Client) TokenData(ctx context.Context, tokenAddress string) (model.TokenData, error) {
	pairs, err := c.Pairs(ctx, tokenAddress)
	if err != nil {
		return model.TokenData{}, err
	}
	return AggregateTokenData(tokenAddress, pairs)
}
