// Package rankapi exposes the ranking engine over HTTP.
package rankapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/marketsift/marketsift/internal/config"
	"github.com/marketsift/marketsift/internal/intent"
	"github.com/marketsift/marketsift/internal/ranking"
)

// Server serves ranking runs over HTTP. Each request is an independent
// engine invocation; the server holds no per-request state.
type Server struct {
	App      *fiber.App
	cfg      *config.ServerEnvConfig
	engine   *ranking.Engine
	inferrer intent.Inferrer
}

func NewServer(cfg *config.ServerEnvConfig, engine *ranking.Engine, inferrer intent.Inferrer) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server env configuration cannot be nil")
	}
	if engine == nil {
		return nil, fmt.Errorf("ranking engine cannot be nil")
	}

	app := fiber.New(fiber.Config{
		Prefork:     false,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   cfg.BodySizeLimit,
	})
	app.Use(recover.New())
	app.Use(ZstdMiddleware([]string{"/health"}))

	s := &Server{App: app, cfg: cfg, engine: engine, inferrer: inferrer}
	app.Get("/health", s.handleHealth)
	app.Get("/api/metrics", s.handleMetrics)
	app.Post("/api/rank", s.handleRank)
	return s, nil
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleMetrics(c *fiber.Ctx) error {
	set := s.engine.Metrics()
	out := MetricsResponse{Success: true, Metrics: make([]MetricPayload, len(set))}
	for i, def := range set {
		out.Metrics[i] = MetricPayload{Name: def.Name, Direction: def.Direction.String()}
	}
	return c.JSON(out)
}

func (s *Server) handleRank(c *fiber.Ctx) error {
	var req RankRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse rank request")
		return c.Status(fiber.StatusBadRequest).JSON(RankResponse{Error: "invalid payload"})
	}

	weights := req.Weights
	if len(weights) == 0 {
		if s.inferrer == nil {
			return c.Status(fiber.StatusBadRequest).JSON(RankResponse{Error: "weights omitted and no inferrer configured"})
		}
		inferred, err := s.inferrer.Infer(req.Intent)
		if err != nil {
			log.Error().Err(err).Str("intent", req.Intent).Msg("weight inference failed")
			return c.Status(fiber.StatusBadGateway).JSON(RankResponse{Error: err.Error()})
		}
		weights = inferred
	}

	candidates := make([]ranking.Candidate, len(req.Candidates))
	for i, p := range req.Candidates {
		candidates[i] = p.toCandidate()
	}

	ranked, err := s.engine.Rank(candidates, weights, req.TopK)
	if err != nil {
		var verr *ranking.ValidationError
		var werr *ranking.InvalidWeightsError
		if errors.As(err, &verr) || errors.As(err, &werr) {
			return c.Status(fiber.StatusBadRequest).JSON(RankResponse{Error: err.Error()})
		}
		log.Error().Err(err).Msg("ranking run failed")
		return c.Status(fiber.StatusInternalServerError).JSON(RankResponse{Error: err.Error()})
	}

	return c.JSON(RankResponse{Success: true, Weights: weights, Ranked: ranked})
}

// Start listens until the context is cancelled, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	go func() {
		if err := s.App.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server listen failed")
		}
	}()
	<-ctx.Done()
	return s.App.ShutdownWithTimeout(5 * time.Second)
}
