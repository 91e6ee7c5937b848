// Package marketplace provides the search client that supplies raw
// product candidates to the ranking engine. The engine never fetches
// anything itself; this is its extraction collaborator.
package marketplace

import (
	"fmt"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/marketsift/marketsift/internal/config"
)

// SearchClientInterface is the interface for the marketplace methods
// used by the ranking pipeline.
type SearchClientInterface interface {
	Search(query string) (SearchResponse, error)
}

// SearchClient is a REST client wrapper for the marketplace search API.
type SearchClient struct {
	cfg    *config.MarketplaceEnvConfig
	client *resty.Client
}

// NewSearchClient constructs a new marketplace search client. Transient
// upstream failures are retried by the underlying HTTP client; the
// engine itself never retries.
func NewSearchClient(cfg *config.MarketplaceEnvConfig) (*SearchClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("marketplace env configuration cannot be nil")
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.Logger = nil

	client := resty.NewWithClient(rc.StandardClient()).
		SetBaseURL(cfg.MarketplaceURL).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(cfg.ClientTimeout)

	return &SearchClient{
		cfg:    cfg,
		client: client,
	}, nil
}

// SearchURL builds the marketplace search URL for a free-text query.
func (s *SearchClient) SearchURL(query string) string {
	return fmt.Sprintf("%s/s?k=%s", s.cfg.MarketplaceURL, url.QueryEscape(query))
}

// Search fetches raw product candidates for the given query, capped at
// the configured result limit.
func (s *SearchClient) Search(query string) (SearchResponse, error) {
	var out SearchResponse
	resp, err := s.client.R().
		SetQueryParam("k", query).
		SetResult(&out).
		Get("/s")
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("search request failed")
		return SearchResponse{}, fmt.Errorf("search %q: %w", query, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Str("query", query).Msg("search non-2xx")
		return SearchResponse{}, fmt.Errorf("search returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if !out.Success {
		return SearchResponse{}, fmt.Errorf("search api returned success=false")
	}

	if s.cfg.ResultLimit > 0 && len(out.Products) > s.cfg.ResultLimit {
		out.Products = out.Products[:s.cfg.ResultLimit]
	}
	log.Debug().Str("query", query).Int("products", len(out.Products)).Msg("search complete")
	return out, nil
}
