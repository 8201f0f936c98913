// Package observability lets the CLI and the server watch the render path
// without the render path importing a logger or a metrics library.
//
// The pipeline and the HTTP middleware report events to whatever hooks are
// registered; by default those are no-ops. [Counters] is a ready-made
// implementation that tallies cache and request events, and [TeeCache]
// fans cache events out to several listeners.
//
//	observability.SetCacheHooks(observability.TeeCache(debugHooks, counters))
//	defer observability.Reset()
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives layout and render stage events.
type PipelineHooks interface {
	OnLayoutStart(ctx context.Context, carriages int)
	OnLayoutComplete(ctx context.Context, carriages int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives artifact cache events, one per format.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, format string)
	OnCacheMiss(ctx context.Context, format string)
	OnCacheSet(ctx context.Context, format string, size int)
}

// HTTPHooks receives one OnRequest and one OnResponse per server request.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks ignores every event. Embed it to implement only some
// methods.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                       {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry is replaced as a whole on every change, so readers never lock.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

func update(fn func(*registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks registers pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks registers HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

func Pipeline() PipelineHooks { return current.Load().pipeline }
func Cache() CacheHooks       { return current.Load().cache }
func HTTP() HTTPHooks         { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		http:     NoopHTTPHooks{},
	})
}

// TeeCache returns hooks that forward every cache event to each of hooks
// in order. Nil entries are skipped.
func TeeCache(hooks ...CacheHooks) CacheHooks {
	var t teeCache
	for _, h := range hooks {
		if h != nil {
			t = append(t, h)
		}
	}
	return t
}

type teeCache []CacheHooks

func (t teeCache) OnCacheHit(ctx context.Context, format string) {
	for _, h := range t {
		h.OnCacheHit(ctx, format)
	}
}

func (t teeCache) OnCacheMiss(ctx context.Context, format string) {
	for _, h := range t {
		h.OnCacheMiss(ctx, format)
	}
}

func (t teeCache) OnCacheSet(ctx context.Context, format string, size int) {
	for _, h := range t {
		h.OnCacheSet(ctx, format, size)
	}
}
