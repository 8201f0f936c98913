package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/fonts"
	"github.com/matzehuels/capview/pkg/geom"
)

// DefaultScale is the PNG pixel density when none is set.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background *canvas.Color
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground fills the image before drawing. The default is
// transparent.
func WithPNGBackground(c canvas.Color) PNGOption {
	return func(r *pngRenderer) { r.background = &c }
}

// RenderPNG rasterizes r at the configured scale. The image is sized to
// r's bounds, rounded up to whole pixels.
func RenderPNG(r canvas.Renderable, opts ...PNGOption) ([]byte, error) {
	cfg := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.scale > 0) || math.IsInf(cfg.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", cfg.scale)
	}

	b := r.Bounds()
	w := int(math.Ceil(b.W * cfg.scale))
	h := int(math.Ceil(b.H * cfg.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to draw: %vx%v", b.W, b.H)
	}

	dc := gg.NewContext(w, h)
	if cfg.background != nil {
		dc.SetColor(*cfg.background)
		dc.Clear()
	}

	s := &pngSurface{dc: dc, scale: cfg.scale, origin: b.Origin()}
	r.Render(s)
	if s.err != nil {
		return nil, s.err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// pngSurface maps diagram units to pixels: subtract the origin, then
// multiply by scale.
type pngSurface struct {
	dc     *gg.Context
	scale  float64
	origin geom.Point
	err    error
}

func (s *pngSurface) pt(p geom.Point) (float64, float64) {
	return (p.X - s.origin.X) * s.scale, (p.Y - s.origin.Y) * s.scale
}

func (s *pngSurface) oval(r geom.Rect) {
	cx, cy := s.pt(r.Center())
	s.dc.DrawEllipse(cx, cy, r.W/2*s.scale, r.H/2*s.scale)
}

func (s *pngSurface) FillOval(r geom.Rect, c canvas.Color) {
	s.oval(r)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *pngSurface) StrokeOval(r geom.Rect, c canvas.Color, lineWidth float64) {
	s.oval(r)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth * s.scale)
	s.dc.Stroke()
}

func (s *pngSurface) FillRect(r geom.Rect, c canvas.Color) {
	x, y := s.pt(r.Origin())
	s.dc.DrawRectangle(x, y, r.W*s.scale, r.H*s.scale)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *pngSurface) FillPath(p *geom.Path, c canvas.Color) {
	s.path(p)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *pngSurface) StrokePath(p *geom.Path, c canvas.Color, lineWidth float64) {
	s.path(p)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth * s.scale)
	s.dc.Stroke()
}

// path replays p onto the context. gg's arc joins the current point to the
// arc start with a line, matching geom's arc semantics.
func (s *pngSurface) path(p *geom.Path) {
	s.dc.ClearPath()
	for _, e := range p.Elements {
		switch e.Kind {
		case geom.MoveTo:
			s.dc.MoveTo(s.pt(e.To))
		case geom.LineTo:
			s.dc.LineTo(s.pt(e.To))
		case geom.QuadTo:
			cx, cy := s.pt(e.Ctrl)
			x, y := s.pt(e.To)
			s.dc.QuadraticTo(cx, cy, x, y)
		case geom.ArcTo:
			cx, cy := s.pt(e.Center)
			s.dc.DrawArc(cx, cy, e.Radius*s.scale, e.Start, e.Start+e.Sweep())
		case geom.Close:
			s.dc.ClosePath()
		}
	}
}

func (s *pngSurface) MeasureText(text string, f canvas.Font) geom.Size {
	return canvas.MeasureText(text, f)
}

func (s *pngSurface) DrawText(text string, at geom.Point, f canvas.Font, c canvas.Color) {
	face, err := fonts.Face(f.Size*s.scale, f.Bold)
	if err != nil {
		if s.err == nil {
			s.err = errors.Wrap(errors.ErrCodeInternal, err, "load font")
		}
		return
	}
	defer face.Close()

	ascent := float64(face.Metrics().Ascent) / 64
	x, y := s.pt(at)
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	s.dc.DrawString(text, x, y+ascent)
}
