// Package instagram talks to the instagram120 RapidAPI scraping provider.
// Callers must treat any error as "this account or post yielded nothing"
// and continue; a failed fetch never aborts a pipeline run.
package instagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/cache"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/clients"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/models"

	"github.com/failsafe-go/failsafe-go"
	"golang.org/x/time/rate"
)

// APIError is returned when the provider answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("instagram provider returned status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	host         string
	apiKey       string
	baseURL      string
	client       *http.Client
	httpExecutor failsafe.Executor[*http.Response]
	shouldRetry  func(resp *http.Response, err error) bool
	limiter      *rate.Limiter
	reelsCache   *cache.Cache
}

type Option func(*Client)

// NewClient creates a provider client for the given RapidAPI host/key pair.
func NewClient(host, apiKey string, opts ...Option) *Client {
	defaultConfig := clients.DefaultHTTPExecutorConfig()
	c := &Client{
		host:    host,
		apiKey:  apiKey,
		baseURL: fmt.Sprintf("https://%s", host),
		client: &http.Client{
			Timeout:   20 * time.Second,
			Transport: clients.DefaultTransport(),
		},
		httpExecutor: clients.NewHTTPExecutor(defaultConfig),
		shouldRetry:  defaultConfig.ShouldRetry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.client = httpClient
		}
	}
}

func WithHTTPExecutorConfig(cfg clients.HTTPExecutorConfig) Option {
	return func(c *Client) {
		c.httpExecutor = clients.NewHTTPExecutor(cfg)
		c.shouldRetry = cfg.ShouldRetry
	}
}

// WithRateLimit throttles outgoing provider calls to n requests per minute.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
		}
	}
}

// WithBaseURL overrides the provider URL, keeping the RapidAPI host header.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithReelsCache caches normalized reels-by-username results so repeated runs
// within the TTL window skip the provider entirely.
func WithReelsCache(reelsCache *cache.Cache) Option {
	return func(c *Client) {
		c.reelsCache = reelsCache
	}
}

// FetchUserReels returns the account's recent reels normalized and sorted by
// viral score descending. Results are cached per username when a cache is
// configured.
func (c *Client) FetchUserReels(ctx context.Context, username string) ([]models.Reel, error) {
	if c.reelsCache == nil {
		return c.fetchUserReels(ctx, username)
	}

	key := cache.MakeKey("reels", username)
	value, err := c.reelsCache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return c.fetchUserReels(ctx, username)
	})
	if err != nil {
		return nil, err
	}
	reels, ok := value.([]models.Reel)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type %T for key %s", value, key)
	}
	return reels, nil
}

func (c *Client) fetchUserReels(ctx context.Context, username string) ([]models.Reel, error) {
	var raw ReelsResponse
	err := c.post(ctx, "/api/instagram/reels", map[string]string{
		"username": username,
		"maxId":    "",
	}, &raw)
	if err != nil {
		return nil, err
	}
	return normalizeReels(raw, username), nil
}

// FetchCaption returns the caption text of a single post. An empty caption is
// not an error.
func (c *Client) FetchCaption(ctx context.Context, shortcode string) (string, error) {
	var raw MediaResponse
	err := c.post(ctx, "/api/instagram/mediaByShortcode", map[string]string{
		"shortcode": shortcode,
	}, &raw)
	if err != nil {
		return "", err
	}
	if raw.Caption == nil {
		return "", nil
	}
	return raw.Caption.Text, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := c.baseURL + endpoint
	resp, err := c.doRequest(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
		req.Header.Set("X-RapidAPI-Host", c.host)
		return req, nil
	})
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, build func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	if c.httpExecutor == nil {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		return c.client.Do(req)
	}

	return clients.ExecuteHTTP(ctx, c.httpExecutor, func() (*http.Response, error) {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		resp, err := c.client.Do(req)
		if c.shouldRetry != nil && c.shouldRetry(resp, err) {
			if resp != nil && resp.Body != nil {
				_ = resp.Body.Close()
			}
		}
		return resp, err
	})
}
