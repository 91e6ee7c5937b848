package marketplace

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/marketsift/marketsift/internal/config"
)

func testConfig(url string) *config.MarketplaceEnvConfig {
	return &config.MarketplaceEnvConfig{
		MarketplaceURL: url,
		ClientTimeout:  5 * time.Second,
		ResultLimit:    10,
	}
}

func TestNewSearchClient_NilConfig(t *testing.T) {
	_, err := NewSearchClient(nil)
	if err == nil {
		t.Fatal("expected error when cfg is nil")
	}
}

func TestSearch_Success(t *testing.T) {
	price := 49.99
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/s" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("k") != "gaming mouse" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		resp := SearchResponse{
			Success: true,
			Query:   "gaming mouse",
			Products: []Product{
				{ID: "p1", Title: "Wireless Gaming Mouse", Price: &price},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			panic(err)
		}
	}))
	defer ts.Close()

	sc, err := NewSearchClient(testConfig(ts.URL))
	if err != nil {
		t.Fatalf("unexpected new error: %v", err)
	}

	out, err := sc.Search("gaming mouse")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(out.Products) != 1 || out.Products[0].ID != "p1" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestSearch_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL)
	cfg.RetryMax = 0
	sc, err := NewSearchClient(cfg)
	if err != nil {
		panic(err)
	}
	if _, err := sc.Search("anything"); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestSearch_ResultLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := SearchResponse{Success: true, Products: make([]Product, 25)}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			panic(err)
		}
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL)
	cfg.ResultLimit = 10
	sc, err := NewSearchClient(cfg)
	if err != nil {
		panic(err)
	}
	out, err := sc.Search("bulk")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(out.Products) != 10 {
		t.Fatalf("expected 10 products after limit, got %d", len(out.Products))
	}
}

func TestSearchURL_EscapesQuery(t *testing.T) {
	sc, err := NewSearchClient(testConfig("https://www.amazon.com.tr"))
	if err != nil {
		panic(err)
	}
	got := sc.SearchURL("wireless gaming mouse")
	want := "https://www.amazon.com.tr/s?k=wireless+gaming+mouse"
	if got != want {
		t.Fatalf("SearchURL = %q, want %q", got, want)
	}
}
