package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

const listingKey = "portfolio:projects:visible"

// ListingCache keeps the public project listing in Redis between writes.
// Every mutation of the projects table invalidates it, so the TTL only
// matters when an external writer touches the database.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached listing, or ok=false on miss or any Redis error.
// Cache trouble must never fail a read, so errors are logged and swallowed.
func (c *ListingCache) Get(ctx context.Context) ([]domain.Project, bool) {
	data, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[cache] get listing: %v", err)
		}
		return nil, false
	}

	var items []domain.Project
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[cache] decode listing: %v", err)
		return nil, false
	}
	return items, true
}

// Set stores the listing for the configured TTL.
func (c *ListingCache) Set(ctx context.Context, items []domain.Project) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("[cache] encode listing: %v", err)
		return
	}
	if err := c.client.Set(ctx, listingKey, data, c.ttl).Err(); err != nil {
		log.Printf("[cache] set listing: %v", err)
	}
}

// Invalidate drops the cached listing.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		log.Printf("[cache] invalidate listing: %v", err)
	}
}
