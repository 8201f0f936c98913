package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters tallies cache and HTTP events. The zero value is ready to use
// and safe for concurrent use.
type Counters struct {
	hits, misses, sets atomic.Int64
	cachedBytes        atomic.Int64
	requests           atomic.Int64
	clientErrors       atomic.Int64
	serverErrors       atomic.Int64
}

// Snapshot is a point-in-time copy of a Counters.
type Snapshot struct {
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	CacheSets    int64 `json:"cache_sets"`
	CachedBytes  int64 `json:"cached_bytes"`
	Requests     int64 `json:"requests"`
	ClientErrors int64 `json:"client_errors"`
	ServerErrors int64 `json:"server_errors"`
}

// HitRatio is hits over lookups, or 0 before the first lookup.
func (s Snapshot) HitRatio() float64 {
	if n := s.CacheHits + s.CacheMisses; n > 0 {
		return float64(s.CacheHits) / float64(n)
	}
	return 0
}

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		CacheHits:    c.hits.Load(),
		CacheMisses:  c.misses.Load(),
		CacheSets:    c.sets.Load(),
		CachedBytes:  c.cachedBytes.Load(),
		Requests:     c.requests.Load(),
		ClientErrors: c.clientErrors.Load(),
		ServerErrors: c.serverErrors.Load(),
	}
}

func (c *Counters) OnCacheHit(context.Context, string)  { c.hits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string) { c.misses.Add(1) }

func (c *Counters) OnCacheSet(_ context.Context, _ string, size int) {
	c.sets.Add(1)
	c.cachedBytes.Add(int64(size))
}

func (c *Counters) OnRequest(context.Context, string, string) {}

// OnResponse counts the request and classifies 4xx and 5xx statuses.
func (c *Counters) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	c.requests.Add(1)
	switch {
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
}

var (
	_ CacheHooks = (*Counters)(nil)
	_ HTTPHooks  = (*Counters)(nil)
)
