package intent

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/marketsift/marketsift/internal/config"
	"github.com/marketsift/marketsift/internal/ranking"
)

// RemoteInferrer asks an OpenRouter-style chat-completions endpoint to
// translate free-text intent into metric weights. The model's output is
// parsed strictly and validated against the metric set before it is
// returned, so a misbehaving model surfaces as an error rather than a
// silently skewed ranking.
type RemoteInferrer struct {
	cfg    *config.IntentEnvConfig
	set    ranking.MetricSet
	client *resty.Client
}

func NewRemoteInferrer(cfg *config.IntentEnvConfig, set ranking.MetricSet) (*RemoteInferrer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("intent env configuration cannot be nil")
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("new remote inferrer: %w", err)
	}

	client := resty.New().
		SetBaseURL(cfg.IntentAPIUrl).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetAuthToken(cfg.OpenrouterAPIKey).
		SetTimeout(30 * time.Second)

	return &RemoteInferrer{cfg: cfg, set: set, client: client}, nil
}

func (r *RemoteInferrer) prompt() string {
	names := r.set.Names()
	return fmt.Sprintf(
		"You assign relative importance weights to product metrics based on a shopper's stated intent. "+
			"Respond with a single JSON object whose keys are exactly %s and whose values are non-negative numbers. "+
			"No prose, no markdown fences.",
		strings.Join(names, ", "))
}

func (r *RemoteInferrer) Infer(text string) (ranking.WeightVector, error) {
	req := chatRequest{
		Model: r.cfg.IntentModel,
		Messages: []chatMessage{
			{Role: "system", Content: r.prompt()},
			{Role: "user", Content: text},
		},
		Temperature: 0.1,
	}

	var out chatResponse
	resp, err := r.client.R().
		SetBody(req).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		log.Error().Err(err).Msg("intent inference request failed")
		return nil, fmt.Errorf("infer weights: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("intent inference non-2xx")
		return nil, fmt.Errorf("intent api returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("intent api returned no choices")
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var weights ranking.WeightVector
	if err := sonic.Unmarshal([]byte(strings.TrimSpace(content)), &weights); err != nil {
		return nil, fmt.Errorf("parse model weights: %w", err)
	}
	if err := ranking.ValidateWeights(r.set, weights); err != nil {
		return nil, fmt.Errorf("model weights rejected: %w", err)
	}

	log.Debug().Str("intent", text).Interface("weights", weights).Msg("remote weights inferred")
	return weights, nil
}
