package jikan

import (
	"context"
	"net/http"
	"time"
)

const (
	DefaultBaseURL   = "https://api.jikan.moe/v4"
	DefaultUserAgent = "AnimeInfo-App/1.0"

	DefaultMaxRetries = 1
	DefaultBackoff    = time.Second
)

// Cache durations per kind of content.
const (
	StaticContentTTL   = 24 * time.Hour
	SearchTTL          = 5 * time.Minute
	TrendingPopularTTL = time.Hour
	AnimeDetailsTTL    = time.Hour
)

// Cache stores raw upstream response bodies.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// RetryPolicy bounds how a rate-limited request is retried. Each retry is a
// new submission to the request serializer.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration
	Sleep      SleepFunc
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: DefaultMaxRetries,
		Backoff:    DefaultBackoff,
		Sleep:      Sleep,
	}
}

// Sleep is the SleepFunc backed by a real timer.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) {
		if p.Sleep == nil {
			p.Sleep = Sleep
		}
		if p.MaxRetries < 0 {
			p.MaxRetries = 0
		}
		c.retry = p
	}
}
