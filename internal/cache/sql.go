package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/store"
)

// SQL caches responses in the response_cache table of a Store.
type SQL struct {
	store  *store.Store
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *zap.SugaredLogger
}

// NewSQL starts a periodic purge of expired rows when interval > 0. Close
// also closes the store.
func NewSQL(s *store.Store, interval time.Duration) *SQL {
	ctx, cancel := context.WithCancel(context.Background())
	c := &SQL{
		store:  s,
		cancel: cancel,
		logger: zap.S().Named("sql_cache"),
	}

	if interval > 0 {
		c.wg.Add(1)
		go c.purgeLoop(ctx, interval)
	}

	return c
}

func (c *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.store.Cache().Get(ctx, key)
}

func (c *SQL) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return c.store.Cache().Set(ctx, key, body, ttl)
}

func (c *SQL) Close() error {
	c.cancel()
	c.wg.Wait()
	return c.store.Close()
}

func (c *SQL) purgeLoop(ctx context.Context, interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := c.store.Cache().PurgeExpired(ctx)
			if err != nil {
				c.logger.Errorw("failed to purge expired entries", "error", err)
				continue
			}
			if n > 0 {
				c.logger.Debugw("purged expired entries", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}
