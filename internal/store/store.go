package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db    *sql.DB
	cache *CacheStore
}

func NewStore(db *sql.DB) *Store {
	qi := newQueryInterceptor(db)
	return &Store{
		db:    db,
		cache: NewCacheStore(qi),
	}
}

func (s *Store) Cache() *CacheStore {
	return s.cache
}

func (s *Store) Close() error {
	return s.db.Close()
}
