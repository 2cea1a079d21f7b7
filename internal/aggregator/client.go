// Package aggregator implements the HTTP client for the upstream
// market-data aggregator's per-token pairs endpoint.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/vesper-eve/token-pulse/internal/config"
	"github.com/vesper-eve/token-pulse/internal/models"
	"github.com/vesper-eve/token-pulse/internal/observability"
	"github.com/vesper-eve/token-pulse/pkg/semver"
)

// supportedSchemaMajor is the aggregator schema major version this client was
// written against.
const supportedSchemaMajor = 1

// UpstreamError represents a non-2xx response from the aggregator
type UpstreamError struct {
	Address    string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("aggregator returned status %d for %s", e.StatusCode, e.Address)
}

// Client fetches trading-pair data from the aggregator
type Client struct {
	baseURL string
	client  *http.Client
	metrics *observability.Metrics

	warnSchemaOnce sync.Once
}

// NewClient creates a Client from the aggregator configuration.
// metrics may be nil.
func NewClient(cfg *config.AggregatorConfig, metrics *observability.Metrics) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		metrics: metrics,
	}
}

// TokenPairs fetches the current pair list for a token address.
// A missing or null pairs field decodes as an empty list; a non-2xx status
// yields an *UpstreamError. No retries.
func (c *Client) TokenPairs(ctx context.Context, address string) ([]models.Pair, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if c.metrics != nil {
		c.metrics.UpstreamCallDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countError()
		return nil, fmt.Errorf("aggregator request failed for %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.countError()
		return nil, &UpstreamError{Address: address, StatusCode: resp.StatusCode}
	}

	var body models.PairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.countError()
		return nil, fmt.Errorf("failed to parse aggregator response for %s: %w", address, err)
	}

	c.checkSchemaVersion(body.SchemaVersion)

	if body.Pairs == nil {
		return []models.Pair{}, nil
	}
	return body.Pairs, nil
}

// checkSchemaVersion warns once when the aggregator reports a schema major
// this client was not written against.
func (c *Client) checkSchemaVersion(version string) {
	if version == "" {
		return
	}
	v, err := semver.Parse(version)
	if err != nil {
		return
	}
	if v.Major != supportedSchemaMajor {
		c.warnSchemaOnce.Do(func() {
			log.Printf("[AGGREGATOR] Warning: upstream schema version %s, client supports major %d",
				version, supportedSchemaMajor)
		})
	}
}

func (c *Client) countError() {
	if c.metrics != nil {
		c.metrics.UpstreamErrors.Inc()
	}
}
