package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	BackendMemory   = "memory"
	BackendDuckDB   = "duckdb"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendNone     = "none"
)

var Backends = []string{BackendMemory, BackendDuckDB, BackendPostgres, BackendRedis, BackendNone}

// Cache stores raw upstream responses for a limited time.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	Close() error
}

type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Close() error { return nil }

func IsValidBackend(b string) bool {
	for _, v := range Backends {
		if v == b {
			return true
		}
	}
	return false
}

func unknownBackend(b string) error {
	return fmt.Errorf("unknown cache backend %q", b)
}
