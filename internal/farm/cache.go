package farm

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// farmIDCache is an in-memory LRU mapping user IDs to farm IDs. The mapping
// is immutable once a farm exists, so entries only expire to bound memory,
// never to refresh data.
type farmIDCache struct {
	lru *expirable.LRU[string, string]
}

func newFarmIDCache(size int, ttl time.Duration) *farmIDCache {
	return &farmIDCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *farmIDCache) Get(userID string) (string, bool) {
	return c.lru.Get(userID)
}

func (c *farmIDCache) Set(userID, farmID string) {
	c.lru.Add(userID, farmID)
}
