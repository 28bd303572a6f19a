package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SweepConfig holds configuration for the sweep command.
type SweepConfig struct {
	Amounts      []float64
	APIURL       string
	RPCURL       string
	PairAddress  string
	Out          string
	PGDSN        string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

// LoadSweep merges config file, environment variables, and flags into
// SweepConfig.
func LoadSweep(cfgFile string, flags *pflag.FlagSet) (SweepConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"api-url":       "https://api.dexscreener.com",
		"timeout":       15 * time.Second,
		"max-retries":   3,
		"retry-backoff": 500 * time.Millisecond,
		"log-level":     "info",
	})
	if err != nil {
		return SweepConfig{}, err
	}

	amounts, err := parseAmounts(getStringSlice(v, "amounts"))
	if err != nil {
		return SweepConfig{}, err
	}

	cfg := SweepConfig{
		Amounts:      amounts,
		APIURL:       v.GetString("api-url"),
		RPCURL:       v.GetString("rpc"),
		PairAddress:  v.GetString("pair"),
		Out:          v.GetString("out"),
		PGDSN:        v.GetString("pg-dsn"),
		Timeout:      v.GetDuration("timeout"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}

func parseAmounts(items []string) ([]float64, error) {
	amounts := make([]float64, 0, len(items))
	for _, item := range items {
		value, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", item, err)
		}
		amounts = append(amounts, value)
	}
	return amounts, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
