// Package fonts provides the embedded fonts used to measure and draw badge
// labels.
//
// The Go font family ships with golang.org/x/image, so text metrics are the
// same on every machine and SVG and PNG output agree on label placement.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontFamily is the CSS font-family written into SVG output.
const FontFamily = "Go, 'Helvetica Neue', Helvetica, Arial, sans-serif"

// Metrics describes the extent of a line of text.
type Metrics struct {
	Width   float64 // advance width
	Height  float64 // ascent + descent
	Ascent  float64 // baseline offset from the top of the line
	Descent float64
}

var (
	parseOnce sync.Once
	regular   *opentype.Font
	bold      *opentype.Font
	parseErr  error
)

func load() error {
	parseOnce.Do(func() {
		if regular, parseErr = opentype.Parse(goregular.TTF); parseErr != nil {
			return
		}
		bold, parseErr = opentype.Parse(gobold.TTF)
	})
	return parseErr
}

// Face returns a font face at size (in user units, 72 DPI). The caller must
// Close it.
func Face(size float64, isBold bool) (font.Face, error) {
	if err := load(); err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	f := regular
	if isBold {
		f = bold
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Measure returns the metrics of text set at size. Non-positive sizes and
// font errors yield zero metrics.
func Measure(text string, size float64, isBold bool) Metrics {
	if size <= 0 {
		return Metrics{}
	}
	face, err := Face(size, isBold)
	if err != nil {
		return Metrics{}
	}
	defer face.Close()

	m := face.Metrics()
	ascent := toFloat(m.Ascent)
	descent := toFloat(m.Descent)
	return Metrics{
		Width:   toFloat(font.MeasureString(face, text)),
		Height:  ascent + descent,
		Ascent:  ascent,
		Descent: descent,
	}
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
