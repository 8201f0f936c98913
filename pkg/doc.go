// Package pkg provides the core libraries for capview train occupancy
// diagrams.
//
// # Overview
//
// capview turns a list of carriage loads into a picture of a train: one
// carriage per load, each showing a row of figures for its crowd level and
// a colored badge with its number. The pkg directory is organized into
// these areas:
//
//  1. Geometry and drawing primitives ([geom], [canvas], [fonts])
//  2. Domain rules ([load] levels and colors, [scale] curves)
//  3. Rendering ([render/train] renderers, [render/sink] encoders)
//  4. Orchestration ([pipeline], [cache], [config])
//  5. Support ([errors], [observability], [buildinfo])
//
// # Architecture
//
// The typical data flow:
//
//	Loads (CLI flag, query string)
//	         ↓
//	    [errors] package (validate loads and bounds)
//	         ↓
//	    [render/train] package (layout + carriages)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF, JSON)
//	         ↓
//	    [cache] package (artifact reuse)
//
// # Quick Start
//
// Lay out a train and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/capview/pkg/geom"
//	    "github.com/matzehuels/capview/pkg/render/sink"
//	    "github.com/matzehuels/capview/pkg/render/train"
//	)
//
//	t, err := train.New([]float64{1.3, 0.2, 0.42, 0.9}, geom.Size{W: 660, H: 300})
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(t)
//
// Or run the whole pipeline with caching:
//
//	c, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Loads:   []float64{1.3, 0.2, 0.42, 0.9},
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//
// # Testing
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/render/train/...    # Specific package
//	go test -run Example ./pkg/...    # Examples only
//
// Redis tests skip unless CAPVIEW_TEST_REDIS points at a server.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/geom
// [canvas]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/canvas
// [fonts]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/fonts
// [load]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/load
// [scale]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/scale
// [render/train]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/render/train
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/capview/pkg/buildinfo
package pkg
