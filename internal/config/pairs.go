package config

import (
	"time"

	"github.com/spf13/pflag"
)

// PairsConfig holds configuration for the pairs command.
type PairsConfig struct {
	APIURL       string
	CSVOut       string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

// LoadPairs merges config file, environment variables, and flags into
// PairsConfig.
func LoadPairs(cfgFile string, flags *pflag.FlagSet) (PairsConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"api-url":       "https://api.dexscreener.com",
		"timeout":       15 * time.Second,
		"max-retries":   3,
		"retry-backoff": 500 * time.Millisecond,
		"log-level":     "info",
	})
	if err != nil {
		return PairsConfig{}, err
	}

	cfg := PairsConfig{
		APIURL:       v.GetString("api-url"),
		CSVOut:       v.GetString("csv"),
		Timeout:      v.GetDuration("timeout"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}
