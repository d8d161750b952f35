package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/config"
	"github.com/zhakazx/animeinfo/internal/store"
	"github.com/zhakazx/animeinfo/internal/store/migrations"
)

// New builds the cache selected by cfg.Backend.
func New(ctx context.Context, cfg config.Cache) (Cache, error) {
	logger := zap.S().Named("cache")

	switch cfg.Backend {
	case BackendMemory:
		logger.Infow("using in-memory cache", "cleanup_interval", cfg.CleanupInterval)
		return NewMemory(cfg.CleanupInterval), nil
	case BackendDuckDB:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = ":memory:"
		}
		db, err := store.NewDB(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open duckdb cache: %w", err)
		}
		if err := migrations.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate duckdb cache: %w", err)
		}
		logger.Infow("using duckdb cache", "path", dsn)
		return NewSQL(store.NewStore(db), cfg.CleanupInterval), nil
	case BackendPostgres:
		db, err := store.NewPostgresDB(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres cache: %w", err)
		}
		if err := migrations.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate postgres cache: %w", err)
		}
		logger.Infow("using postgres cache")
		return NewSQL(store.NewStore(db), cfg.CleanupInterval), nil
	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Infow("using redis cache", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return NewRedis(rdb), nil
	case BackendNone:
		logger.Infow("response cache disabled")
		return NewNoop(), nil
	default:
		return nil, unknownBackend(cfg.Backend)
	}
}
