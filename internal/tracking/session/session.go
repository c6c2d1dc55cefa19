// Package session keeps short-lived click sessions handed to LINE in the
// redirect URL. The cache is process local and advisory: attribution never
// depends on it.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 100000
	DefaultTTL  = 24 * time.Hour
)

type Session struct {
	TrackingCodeID uuid.UUID `json:"trackingCodeId"`
	Code           string    `json:"code"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Cache is a bounded LRU whose entries expire after a fixed TTL
type Cache struct {
	lru *expirable.LRU[string, Session]
}

func New(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{lru: expirable.NewLRU[string, Session](size, nil, ttl)}
}

func (c *Cache) Put(id string, s Session) {
	c.lru.Add(id, s)
}

// Get returns the session for id unless it was evicted or has expired
func (c *Cache) Get(id string) (Session, bool) {
	return c.lru.Get(id)
}

func (c *Cache) Len() int {
	return c.lru.Len()
}
