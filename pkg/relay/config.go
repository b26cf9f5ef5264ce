package relay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide delivery configuration, read once at startup.
// Presence or absence of each endpoint is the sole discriminator for which
// transports activate; there is no runtime reconfiguration.
type Config struct {
	// GRPCEndpoint enables the gRPC transport when set.
	GRPCEndpoint string `yaml:"grpc_endpoint"`

	// WebhookEndpoint enables the legacy HTTP subscriber transport when set.
	WebhookEndpoint string `yaml:"webhook_endpoint"`

	// Network is the chain network this indexer follows. "testnet" flags
	// outbound webhook events with isTest=true.
	Network string `yaml:"network"`

	// SentryDSN enables Sentry capture of contained delivery failures.
	SentryDSN string `yaml:"sentry_dsn"`
}

// DefaultConfig returns a config with no endpoints configured, which makes
// the dispatcher fall back to stdout.
func DefaultConfig() Config {
	return Config{Network: "mainnet"}
}

// LoadConfig loads configuration in three layers: defaults, an optional yaml
// file, then environment variables (which win).
//
// Environment variables:
//   - EVENT_PROCESSOR_URI / EVENT_PROCESSOR_URL: gRPC endpoint (URI wins)
//   - EVENT_SUBSCRIBER_URL: HTTP webhook endpoint
//   - NETWORK: "testnet" marks outbound events as test traffic
//   - SENTRY_DSN: error reporting
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &config); err != nil {
				return config, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return config, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	config.GRPCEndpoint = getEnv("EVENT_PROCESSOR_URL", config.GRPCEndpoint)
	config.GRPCEndpoint = getEnv("EVENT_PROCESSOR_URI", config.GRPCEndpoint)
	config.WebhookEndpoint = getEnv("EVENT_SUBSCRIBER_URL", config.WebhookEndpoint)
	config.Network = getEnv("NETWORK", config.Network)
	config.SentryDSN = getEnv("SENTRY_DSN", config.SentryDSN)

	return config, nil
}

// IsTestnet reports whether outbound events should be flagged as test
// traffic.
func (c Config) IsTestnet() bool {
	return c.Network == "testnet"
}

// getEnv returns the value of an environment variable or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
