package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService is an in-process TTL cache used for flight lookups and
// export payloads. Roster generation and manual seat edits invalidate the
// affected flight's entries. The seat map itself is never cached here:
// it is recomputed from the layout table on every call so a configuration
// change can never serve a stale cabin.
type CacheService struct {
	cache *cache.Cache
}

func NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *CacheService {
	defaultExpiration := time.Duration(defaultExpirationSeconds) * time.Second
	cleanUpInterval := time.Duration(cleanUpIntervalSeconds) * time.Second
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// GetOrSet returns the cached value for key, loading and caching it on a
// miss.
func (cs *CacheService) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if val, found := cs.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	cs.Set(key, val, duration)
	return val, nil
}
