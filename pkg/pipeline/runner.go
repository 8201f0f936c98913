package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/capview/pkg/cache"
	"github.com/matzehuels/capview/pkg/geom"
	"github.com/matzehuels/capview/pkg/observability"
	"github.com/matzehuels/capview/pkg/render/train"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state, so several goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the expiry of cached artifacts. Zero means no expiry.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	layoutStart := time.Now()
	t, err := r.Build(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Train = t
	result.TrainHash = r.trainHash(t)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.CarriageCount = t.Len()

	opts.Logger.Debug("laid out train",
		"carriages", t.Len(),
		"width", t.Layout().CarriageWidth,
		"height", t.Layout().CarriageHeight,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, hits, err := r.render(ctx, t, result.TrainHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Formats)

	opts.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", hits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build lays out the train. It never touches the cache.
func (r *Runner) Build(ctx context.Context, opts Options) (t *train.Train, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(opts.Loads))
	start := time.Now()
	defer func() { hooks.OnLayoutComplete(ctx, len(opts.Loads), time.Since(start), err) }()

	return train.New(opts.Loads, geom.Size{W: opts.Width, H: opts.Height}, opts.TrainOptions()...)
}

// Render encodes t in every requested format, reading and filling the
// cache per format. The boolean reports whether every artifact came from
// the cache. The cache key comes from t itself, so opts.Loads and the
// bounds in opts are ignored.
func (r *Runner) Render(ctx context.Context, t *train.Train, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	artifacts, hits, err := r.render(ctx, t, r.trainHash(t), opts)
	if err != nil {
		return nil, false, err
	}
	return artifacts, len(hits) == len(opts.Formats), nil
}

func (r *Runner) render(ctx context.Context, t *train.Train, hash string, opts Options) (artifacts map[string][]byte, hits []string, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	cacheHooks := observability.Cache()
	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if hit {
				cacheHooks.OnCacheHit(ctx, format)
				artifacts[format] = data
				hits = append(hits, format)
				continue
			}
			cacheHooks.OnCacheMiss(ctx, format)
		}

		data, err := Encode(ctx, t, format, opts)
		if err != nil {
			return nil, nil, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
		} else {
			cacheHooks.OnCacheSet(ctx, format, len(data))
		}
	}
	return artifacts, hits, nil
}

// trainHash keys t by its loads and laid-out size. Two requests whose
// bounds produce the same layout draw the same picture and share entries.
func (r *Runner) trainHash(t *train.Train) string {
	size := t.Layout().Size
	return r.Keyer.TrainHash(t.Loads(), size.W, size.H)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
