// Package tartan is a client library for the legacy "tartan" financial
// data aggregation API. A Client dispatches product-scoped operations
// (authenticate, answer an MFA step, fetch data) and decodes the
// differently-shaped responses each product returns.
package tartan

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Endpoints of the hosted environments.
const (
	// EnvironmentProduction is the live environment.
	EnvironmentProduction = "https://api.plaid.com"
	// EnvironmentTartan is the development/sandbox environment.
	EnvironmentTartan = "https://tartan.plaid.com"
)

// Config holds the endpoint and credentials shared by every request.
// It is immutable after construction and safe to share across
// concurrent calls.
type Config struct {
	// Endpoint is the API base URL, e.g. EnvironmentProduction.
	Endpoint string
	// ClientID is your application's client id from the dashboard.
	ClientID string
	// Secret is your application's secret from the dashboard.
	Secret string
}

// LoadConfig loads the client configuration from environment variables,
// reading a .env file first if one is present.
func LoadConfig() (*Config, error) {
	// Load from .env file if present (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Endpoint: getEnv("TARTAN_ENDPOINT", EnvironmentTartan),
		ClientID: os.Getenv("TARTAN_CLIENT_ID"),
		Secret:   os.Getenv("TARTAN_SECRET"),
	}

	if cfg.ClientID == "" {
		return nil, fmt.Errorf("missing required environment variable: TARTAN_CLIENT_ID")
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("missing required environment variable: TARTAN_SECRET")
	}
	return cfg, nil
}

// getEnv returns the env var value or default if unset.
func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
