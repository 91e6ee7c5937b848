package main

import (
	"flag"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marketsift/marketsift/internal/config"
	"github.com/marketsift/marketsift/internal/intent"
	"github.com/marketsift/marketsift/internal/marketplace"
	"github.com/marketsift/marketsift/internal/ranking"
	"github.com/marketsift/marketsift/internal/utils/logger"
)

var (
	query        = flag.String("query", "wireless gaming mouse", "marketplace search query")
	goal         = flag.String("intent", "cheap and fast", "free-text shopping intent")
	topK         = flag.Int("top", 0, "number of results to return (0 uses the configured default)")
	remoteIntent = flag.Bool("remote-intent", false, "infer weights with the remote model instead of the rule table")
)

func main() {
	logger.Init()
	log.Info().Str("query", *query).Str("intent", *goal).Msg("Starting ranker...")

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

	searchClient, err := marketplace.NewSearchClient(&cfg.MarketplaceEnvConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init marketplace client")
	}

	var inferrer intent.Inferrer = intent.NewRuleInferrer(set)
	if *remoteIntent {
		remote, err := intent.NewRemoteInferrer(&cfg.IntentEnvConfig, set)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init remote inferrer")
		}
		inferrer = remote
	}

	result, err := searchClient.Search(*query)
	if err != nil {
		log.Fatal().Err(err).Msg("marketplace search failed")
	}
	if len(result.Products) == 0 {
		log.Info().Str("query", *query).Msg("no products found")
		return
	}

	weights, err := inferrer.Infer(*goal)
	if err != nil {
		log.Fatal().Err(err).Msg("weight inference failed")
	}

	ranked, err := engine.Rank(marketplace.Candidates(result.Products), weights, *topK)
	if err != nil {
		log.Fatal().Err(err).Msg("ranking run failed")
	}

	byID := marketplace.ByID(result.Products)
	for _, sc := range ranked {
		p := byID[sc.ID]
		log.Info().
			Int("rank", sc.Rank).
			Float64("score", sc.Score).
			Str("title", p.Title).
			Str("link", p.Link).
			Msgf("#%d %s", sc.Rank, p.Title)
	}

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		ranking.PlotScoresTerminal(ranked, "Composite scores")
	}
}
