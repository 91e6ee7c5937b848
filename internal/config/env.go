// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	ServerEnvConfig
	MarketplaceEnvConfig
	IntentEnvConfig
	EngineEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ServerEnvConfig configures the rank API server.
type ServerEnvConfig struct {
	Address       string `env:"SERVER_ADDRESS" envDefault:"127.0.0.1"`
	Port          int    `env:"SERVER_PORT" envDefault:"8080"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT" envDefault:"1048576"`
}

// MarketplaceEnvConfig configures the marketplace search client.
type MarketplaceEnvConfig struct {
	MarketplaceURL string        `env:"MARKETPLACE_URL" envDefault:"https://www.amazon.com.tr"`
	ClientTimeout  time.Duration `env:"CLIENT_TIMEOUT" envDefault:"30s"`
	RetryMax       int           `env:"CLIENT_RETRY_MAX" envDefault:"3"`
	ResultLimit    int           `env:"SEARCH_RESULT_LIMIT" envDefault:"10"`
}

// IntentEnvConfig configures the intent-to-weight inference client.
type IntentEnvConfig struct {
	OpenrouterAPIKey string `env:"OPENROUTER_API_KEY"`
	IntentAPIUrl     string `env:"INTENT_API_URL" envDefault:"https://openrouter.ai/api/v1"`
	IntentModel      string `env:"INTENT_MODEL" envDefault:"meta-llama/llama-3.1-8b-instruct"`
}

// EngineEnvConfig configures the ranking engine. MetricSpec is the
// versioned metric list: comma-separated name:direction pairs parsed by
// ParseMetricSet. Changing the set is a configuration change, external
// to the engine's logic.
type EngineEnvConfig struct {
	MetricSpec  string  `env:"METRIC_SET" envDefault:"Price:lower,Rating:higher,Reviews:higher,DeliveryDays:lower"`
	TopK        int     `env:"RANK_TOP_K" envDefault:"3"`
	Epsilon     float64 `env:"RANK_EPSILON" envDefault:"1e-9"`
	Environment string  `env:"ENVIRONMENT" envDefault:"dev"`
}
