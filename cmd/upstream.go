package cmd

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/cache"
	"github.com/zhakazx/animeinfo/internal/config"
	"github.com/zhakazx/animeinfo/pkg/jikan"
	"github.com/zhakazx/animeinfo/pkg/serializer"
	"github.com/zhakazx/animeinfo/pkg/youtube"
)

// upstream holds the outbound side of the process: the response cache, the
// Jikan request serializer and both API clients.
type upstream struct {
	cache      cache.Cache
	serializer *serializer.Serializer
	jikan      *jikan.Client
	youtube    *youtube.Client
}

func newUpstream(ctx context.Context, cfg *config.Configuration) (*upstream, error) {
	c, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	s := serializer.New(
		serializer.WithMinInterval(cfg.Jikan.MinInterval),
		serializer.WithRequestsPerMinute(cfg.Jikan.RequestsPerMinute),
	)

	jikanClient := jikan.NewClient(cfg.Jikan.URL, s,
		jikan.WithHTTPClient(&http.Client{Timeout: cfg.Jikan.Timeout}),
		jikan.WithUserAgent(cfg.Jikan.UserAgent),
		jikan.WithCache(c),
		jikan.WithRetryPolicy(jikan.RetryPolicy{
			MaxRetries: cfg.Jikan.MaxRetries,
			Backoff:    cfg.Jikan.RetryBackoff,
		}),
	)

	youtubeClient := youtube.NewClient(cfg.YouTube.URL, cfg.YouTube.APIKey,
		youtube.WithHTTPClient(&http.Client{Timeout: cfg.YouTube.Timeout}),
		youtube.WithCache(c),
	)
	if !youtubeClient.Enabled() {
		zap.S().Named("upstream").Infow("youtube api key not set, trailer lookups disabled")
	}

	return &upstream{
		cache:      c,
		serializer: s,
		jikan:      jikanClient,
		youtube:    youtubeClient,
	}, nil
}

// Close drains the serializer before releasing the cache it writes to.
func (u *upstream) Close() {
	u.serializer.Close()
	if err := u.cache.Close(); err != nil {
		zap.S().Named("upstream").Warnw("failed to close cache", "error", err)
	}
}
