package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const cacheTable = "response_cache"

// psql works for both DuckDB and PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CacheStore keeps upstream response bodies with an expiry.
type CacheStore struct {
	db  QueryInterceptor
	now func() time.Time
}

func NewCacheStore(db QueryInterceptor) *CacheStore {
	return &CacheStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the body stored under key if it has not expired.
func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := psql.Select("body").
		From(cacheTable).
		Where(sq.Eq{"cache_key": key}).
		Where(sq.Gt{"expires_at": s.now()}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var body string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(body), true, nil
}

func (s *CacheStore) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	query, args, err := psql.Insert(cacheTable).
		Columns("cache_key", "body", "expires_at").
		Values(key, string(body), s.now().Add(ttl)).
		Suffix("ON CONFLICT (cache_key) DO UPDATE SET body = EXCLUDED.body, expires_at = EXCLUDED.expires_at").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *CacheStore) Delete(ctx context.Context, key string) error {
	query, args, err := psql.Delete(cacheTable).
		Where(sq.Eq{"cache_key": key}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// PurgeExpired removes expired entries and returns how many were removed.
func (s *CacheStore) PurgeExpired(ctx context.Context) (int64, error) {
	query, args, err := psql.Delete(cacheTable).
		Where(sq.LtOrEq{"expires_at": s.now()}).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Count returns the number of stored entries, expired or not.
func (s *CacheStore) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(cacheTable).ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SetClock replaces the time source. Used by tests.
func (s *CacheStore) SetClock(now func() time.Time) {
	s.now = now
}
