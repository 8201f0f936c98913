// Package pipeline turns a list of carriage loads into rendered artifacts.
//
// This package implements the layout → render pipeline shared by the CLI
// and the HTTP server, so both entry points apply the same defaults,
// validation and caching.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Build: lay the train out within the requested bounds
//  2. Render: encode it in each requested format (SVG, PNG, PDF, JSON)
//
// Layout is cheap and always recomputed. Encoded artifacts are cached per
// format, keyed by everything that changes their bytes.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Loads:   []float64{1.3, 0.2, 0.42, 0.9},
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/capview/pkg/cache"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/render/sink"
	"github.com/matzehuels/capview/pkg/render/train"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default bounding width in points.
	DefaultWidth = 660.0

	// DefaultHeight is the default bounding height in points.
	DefaultHeight = 300.0

	// DefaultScale is the default PNG pixel density.
	DefaultScale = sink.DefaultScale
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Loads   []float64 `json:"loads"`
	Width   float64   `json:"width,omitempty"`
	Height  float64   `json:"height,omitempty"`
	Formats []string  `json:"formats,omitempty"`
	Scale   float64   `json:"scale,omitempty"`

	// Theme overrides the drawing colors. Nil means train.DefaultTheme.
	Theme *train.Theme `json:"-"`

	// Refresh skips cache lookups but still stores fresh artifacts.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout applies bound defaults and validates loads and bounds.
func (o *Options) ValidateForLayout() error {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := errors.ValidateLoads(o.Loads); err != nil {
		return err
	}
	return errors.ValidateBounds(o.Width, o.Height)
}

// ValidateForRender applies render defaults and validates formats and scale.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	if !(o.Scale > 0) || o.Scale > 16 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, 16], got %v", o.Scale)
	}
	return nil
}

// TrainOptions returns the options passed to train.New.
func (o *Options) TrainOptions() []train.Option {
	if o.Theme == nil {
		return nil
	}
	return []train.Option{train.WithTheme(*o.Theme)}
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Theme: themeKey(o.Theme)}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

func themeKey(t *train.Theme) string {
	if t == nil {
		return ""
	}
	return strings.Join([]string{
		t.Outline.Hex(), t.Figure.Hex(), t.Badge.Hex(), t.Text.Hex(), t.TextOnRed.Hex(),
	}, ",")
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Train is the laid-out train.
	Train *train.Train

	// TrainHash identifies the train by its loads and laid-out size.
	TrainHash string

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CarriageCount int
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks which formats were served from the cache.
type CacheInfo struct {
	RenderHit bool     // all artifacts came from cache
	Hits      []string // formats served from cache
}
