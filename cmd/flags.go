package cmd

import (
	"github.com/spf13/pflag"

	"github.com/zhakazx/animeinfo/internal/config"
)

func registerJikanFlags(fs *pflag.FlagSet, cfg *config.Configuration) {
	fs.StringVar(&cfg.Jikan.URL, "jikan-url", cfg.Jikan.URL, "Jikan v4 base URL")
	fs.StringVar(&cfg.Jikan.UserAgent, "jikan-user-agent", cfg.Jikan.UserAgent, "User-Agent sent to Jikan")
	fs.DurationVar(&cfg.Jikan.MinInterval, "jikan-min-interval", cfg.Jikan.MinInterval, "Minimum spacing between two Jikan requests")
	fs.IntVar(&cfg.Jikan.RequestsPerMinute, "jikan-requests-per-minute", cfg.Jikan.RequestsPerMinute, "Jikan request budget per minute")
	fs.IntVar(&cfg.Jikan.MaxRetries, "jikan-max-retries", cfg.Jikan.MaxRetries, "Retries of a rate limited Jikan request")
	fs.DurationVar(&cfg.Jikan.RetryBackoff, "jikan-retry-backoff", cfg.Jikan.RetryBackoff, "Wait before retrying a rate limited Jikan request")
	fs.DurationVar(&cfg.Jikan.Timeout, "jikan-timeout", cfg.Jikan.Timeout, "Jikan HTTP client timeout")
}

func registerYouTubeFlags(fs *pflag.FlagSet, cfg *config.Configuration) {
	fs.StringVar(&cfg.YouTube.URL, "youtube-url", cfg.YouTube.URL, "YouTube Data API v3 base URL")
	fs.StringVar(&cfg.YouTube.APIKey, "youtube-api-key", cfg.YouTube.APIKey, "YouTube Data API key; trailer lookups are disabled when empty")
	fs.DurationVar(&cfg.YouTube.Timeout, "youtube-timeout", cfg.YouTube.Timeout, "YouTube HTTP client timeout")
}

func registerCacheFlags(fs *pflag.FlagSet, cfg *config.Configuration) {
	fs.StringVar(&cfg.Cache.Backend, "cache-backend", cfg.Cache.Backend, "Response cache backend (memory, duckdb, postgres, redis, none)")
	fs.StringVar(&cfg.Cache.DSN, "cache-dsn", cfg.Cache.DSN, "DuckDB path or Postgres DSN of the response cache")
	fs.StringVar(&cfg.Cache.RedisAddr, "cache-redis-addr", cfg.Cache.RedisAddr, "Redis address")
	fs.StringVar(&cfg.Cache.RedisPassword, "cache-redis-password", cfg.Cache.RedisPassword, "Redis password")
	fs.IntVar(&cfg.Cache.RedisDB, "cache-redis-db", cfg.Cache.RedisDB, "Redis database")
	fs.DurationVar(&cfg.Cache.CleanupInterval, "cache-cleanup-interval", cfg.Cache.CleanupInterval, "Interval between purges of expired cache entries")
}
