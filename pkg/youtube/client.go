package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/models"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// CacheTTL applies to every YouTube response.
	CacheTTL = 24 * time.Hour

	DefaultMaxResults = 5

	serviceName = "youtube"
)

// Cache stores raw upstream response bodies.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      Cache
	logger     *zap.SugaredLogger
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     zap.S().Named("youtube"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether the client has an API key.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GetVideoDetails GET /videos?id={id}&part=snippet,contentDetails
func (c *Client) GetVideoDetails(ctx context.Context, id string) (*models.Video, error) {
	if id == "" {
		return nil, srvErrors.NewValidationError("video id is required")
	}

	q := url.Values{}
	q.Set("id", id)
	q.Set("part", "snippet,contentDetails")

	var result models.VideoList
	if err := c.fetch(ctx, "/videos", q, &result); err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, srvErrors.NewVideoNotFoundError(id)
	}
	return &result.Items[0], nil
}

// SearchVideos GET /search?part=snippet&type=video&q={query}&maxResults={n}
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	if query == "" {
		return nil, srvErrors.NewValidationError("search query is required")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(maxResults))

	var result models.SearchResultList
	if err := c.fetch(ctx, "/search", q, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, q url.Values, dest any) error {
	if c.apiKey == "" {
		return srvErrors.NewConfigurationError("youtube api key not configured")
	}
	if c.baseURL == "" {
		return srvErrors.NewConfigurationError("youtube base url is not configured")
	}

	// the key is not part of the cache key
	key := "youtube:" + endpoint + "?" + q.Encode()
	if body, ok := c.cacheGet(ctx, key); ok {
		if err := json.Unmarshal(body, dest); err == nil {
			return nil
		}
	}

	q.Set("key", c.apiKey)
	body, err := c.get(ctx, c.baseURL+endpoint+"?"+q.Encode())
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode youtube response for %s: %w", endpoint, err)
	}

	c.cacheSet(ctx, key, body)
	return nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, srvErrors.NewUpstreamUnreachableError(serviceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, srvErrors.NewUpstreamErrorWithMessage(serviceName, resp.StatusCode, "quota exceeded or invalid key")
	case resp.StatusCode == http.StatusNotFound:
		return nil, srvErrors.NewResourceNotFoundError("video")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, srvErrors.NewUpstreamError(serviceName, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, srvErrors.NewUpstreamUnreachableError(serviceName, err)
	}
	return body, nil
}

func (c *Client) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Errorw("cache read failed", "key", key, "error", err)
		return nil, false
	}
	return body, ok
}

func (c *Client) cacheSet(ctx context.Context, key string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, body, CacheTTL); err != nil {
		c.logger.Errorw("cache write failed", "key", key, "error", err)
	}
}
