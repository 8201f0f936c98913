// Package canvas defines the drawing surface the renderers paint onto.
//
// Renderers never talk to an output format directly. They issue a fixed
// sequence of fill, stroke and text calls against a [Surface]; the sinks in
// pkg/render/sink implement Surface for SVG and PNG, and [Recorder]
// captures the calls as data for tests and JSON export.
//
// Composition works by translation: a parent renderer hands each child a
// surface wrapped with [Offset] so the child draws in its own local
// coordinate space, starting at (0,0).
package canvas

import (
	"github.com/matzehuels/capview/pkg/fonts"
	"github.com/matzehuels/capview/pkg/geom"
)

// Font selects a face for text drawing.
type Font struct {
	Size float64 `json:"size"`
	Bold bool    `json:"bold,omitempty"`
}

// Surface receives draw calls. Coordinates are top-left origin, y down.
// Text positions are the top-left corner of the text's bounding box.
type Surface interface {
	FillOval(r geom.Rect, c Color)
	StrokeOval(r geom.Rect, c Color, lineWidth float64)
	FillRect(r geom.Rect, c Color)
	FillPath(p *geom.Path, c Color)
	StrokePath(p *geom.Path, c Color, lineWidth float64)
	MeasureText(text string, f Font) geom.Size
	DrawText(text string, at geom.Point, f Font, c Color)
}

// Renderable is anything that can draw itself onto a Surface. Bounds is
// the region it paints in its parent's coordinate space.
type Renderable interface {
	Bounds() geom.Rect
	Render(s Surface)
}

// MeasureText measures text with the embedded fonts. Surfaces without
// their own text engine use it for MeasureText.
func MeasureText(text string, f Font) geom.Size {
	m := fonts.Measure(text, f.Size, f.Bold)
	return geom.Size{W: m.Width, H: m.Height}
}

// Offset returns a surface that draws onto s with every coordinate moved
// by origin. Offsets nest.
func Offset(s Surface, origin geom.Point) Surface {
	if o, ok := s.(*offsetSurface); ok {
		return &offsetSurface{base: o.base, d: o.d.Add(origin)}
	}
	return &offsetSurface{base: s, d: origin}
}

type offsetSurface struct {
	base Surface
	d    geom.Point
}

func (o *offsetSurface) FillOval(r geom.Rect, c Color) {
	o.base.FillOval(r.Offset(o.d), c)
}

func (o *offsetSurface) StrokeOval(r geom.Rect, c Color, lineWidth float64) {
	o.base.StrokeOval(r.Offset(o.d), c, lineWidth)
}

func (o *offsetSurface) FillRect(r geom.Rect, c Color) {
	o.base.FillRect(r.Offset(o.d), c)
}

func (o *offsetSurface) FillPath(p *geom.Path, c Color) {
	o.base.FillPath(p.Translate(o.d), c)
}

func (o *offsetSurface) StrokePath(p *geom.Path, c Color, lineWidth float64) {
	o.base.StrokePath(p.Translate(o.d), c, lineWidth)
}

func (o *offsetSurface) MeasureText(text string, f Font) geom.Size {
	return o.base.MeasureText(text, f)
}

func (o *offsetSurface) DrawText(text string, at geom.Point, f Font, c Color) {
	o.base.DrawText(text, at.Add(o.d), f, c)
}
