package gallery

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"smartgallery/internal/domain"
)

// Rebuilder is the computation the cache memoizes.
type Rebuilder interface {
	Rebuild(ctx context.Context) ([]domain.GalleryRecord, error)
}

// Cache memoizes one gallery rebuild behind a TTL with manual invalidation.
// It is the only stateful component in the pipeline; construct one at startup
// and share it.
//
// The mutex is held for the whole rebuild, so concurrent requests arriving
// during a recompute block on the single in-flight rebuild and share its
// result. A thundering herd of cache misses never triggers more than one
// rate-limited classification run.
type Cache struct {
	rebuilder Rebuilder
	ttl       time.Duration
	clock     Clock
	log       logrus.FieldLogger

	mu         sync.Mutex
	value      []domain.GalleryRecord
	computedAt time.Time
}

// NewCache creates a cache around the given rebuilder.
func NewCache(rebuilder Rebuilder, ttl time.Duration, clock Clock, logger logrus.FieldLogger) *Cache {
	return &Cache{
		rebuilder: rebuilder,
		ttl:       ttl,
		clock:     clock,
		log:       logger.WithField("component", "gallery_cache"),
	}
}

// Get returns the cached gallery if it is younger than the TTL, otherwise
// rebuilds synchronously. A failed rebuild returns the fallback records
// WITHOUT caching them, so the next call retries the real pipeline instead of
// serving a stuck failure until expiry. Get never returns an empty list.
func (c *Cache) Get(ctx context.Context) []domain.GalleryRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.computedAt.IsZero() && c.clock.Now().Sub(c.computedAt) < c.ttl {
		return c.value
	}

	records, err := c.rebuilder.Rebuild(ctx)
	if err != nil {
		c.log.WithError(err).Error("Gallery rebuild failed, serving fallback")
		return Fallback()
	}

	c.value = records
	c.computedAt = c.clock.Now()
	c.log.WithField("records", len(records)).Info("Gallery cache refreshed")
	return c.value
}

// Invalidate forces the next Get to rebuild regardless of age. Exposed to
// operators through the admin revalidate endpoint.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.computedAt = time.Time{}
	c.log.Info("Gallery cache invalidated")
}
