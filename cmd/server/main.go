package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/marketsift/marketsift/internal/config"
	"github.com/marketsift/marketsift/internal/intent"
	"github.com/marketsift/marketsift/internal/rankapi"
	"github.com/marketsift/marketsift/internal/ranking"
	"github.com/marketsift/marketsift/internal/utils/logger"
)

func main() {
	logger.Init()
	log.Info().Msg("Starting rank API server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	set, err := config.ParseMetricSet(cfg.MetricSpec)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse metric set")
	}

	engine, err := ranking.NewEngine(set,
		ranking.WithEpsilon(cfg.Epsilon),
		ranking.WithTopK(cfg.TopK),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build ranking engine")
	}

	// Weight inference for requests that omit explicit weights. The
	// remote model is used when an API key is configured, the rule
	// table otherwise.
	var inferrer intent.Inferrer = intent.NewRuleInferrer(set)
	if cfg.OpenrouterAPIKey != "" {
		remote, err := intent.NewRemoteInferrer(&cfg.IntentEnvConfig, set)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init remote inferrer")
		}
		inferrer = remote
	}

	server, err := rankapi.NewServer(&cfg.ServerEnvConfig, engine, inferrer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
