package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/fonts"
	"github.com/matzehuels/capview/pkg/geom"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background *canvas.Color
	title      string
}

// WithBackground fills the whole image before drawing. The default is a
// transparent background.
func WithBackground(c canvas.Color) SVGOption {
	return func(r *svgRenderer) { r.background = &c }
}

// WithTitle adds a <title> element.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// RenderSVG draws r into an SVG document sized to its bounds.
func RenderSVG(r canvas.Renderable, opts ...SVGOption) []byte {
	cfg := svgRenderer{}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := r.Bounds()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(b.X), num(b.Y), num(b.W), num(b.H), num(b.W), num(b.H))

	if cfg.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(cfg.title))
	}
	if cfg.background != nil {
		fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(b.X), num(b.Y), num(b.W), num(b.H), cfg.background.Hex())
	}

	r.Render(&svgSurface{buf: &buf})

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

type svgSurface struct {
	buf *bytes.Buffer
}

func (s *svgSurface) FillOval(r geom.Rect, c canvas.Color) {
	c0 := r.Center()
	fmt.Fprintf(s.buf, `  <ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s"/>`+"\n",
		num(c0.X), num(c0.Y), num(r.W/2), num(r.H/2), c.Hex())
}

func (s *svgSurface) StrokeOval(r geom.Rect, c canvas.Color, lineWidth float64) {
	c0 := r.Center()
	fmt.Fprintf(s.buf, `  <ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		num(c0.X), num(c0.Y), num(r.W/2), num(r.H/2), c.Hex(), num(lineWidth))
}

func (s *svgSurface) FillRect(r geom.Rect, c canvas.Color) {
	fmt.Fprintf(s.buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(r.X), num(r.Y), num(r.W), num(r.H), c.Hex())
}

func (s *svgSurface) FillPath(p *geom.Path, c canvas.Color) {
	fmt.Fprintf(s.buf, `  <path d="%s" fill="%s"/>`+"\n", pathData(p), c.Hex())
}

func (s *svgSurface) StrokePath(p *geom.Path, c canvas.Color, lineWidth float64) {
	fmt.Fprintf(s.buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		pathData(p), c.Hex(), num(lineWidth))
}

func (s *svgSurface) MeasureText(text string, f canvas.Font) geom.Size {
	return canvas.MeasureText(text, f)
}

// DrawText places text by the top-left of its box; SVG anchors text at the
// baseline, so the ascent is added.
func (s *svgSurface) DrawText(text string, at geom.Point, f canvas.Font, c canvas.Color) {
	m := fonts.Measure(text, f.Size, f.Bold)
	weight := "normal"
	if f.Bold {
		weight = "bold"
	}
	fmt.Fprintf(s.buf, `  <text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="%s" fill="%s">%s</text>`+"\n",
		num(at.X), num(at.Y+m.Ascent), fonts.FontFamily, num(f.Size), weight, c.Hex(), escapeXML(text))
}

// pathData encodes a path as an SVG "d" attribute. Arcs are written as a
// line (or move, at the start of a path) to their first point followed by
// an elliptical arc command; full circles are split in two halves because a
// single arc command with coinciding ends draws nothing.
func pathData(p *geom.Path) string {
	var b bytes.Buffer
	hasCurrent := false
	pt := func(q geom.Point) {
		b.WriteString(num(q.X))
		b.WriteByte(' ')
		b.WriteString(num(q.Y))
	}
	cmd := func(c byte) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(c)
		b.WriteByte(' ')
	}
	arc := func(r, sweep float64, to geom.Point) {
		cmd('A')
		large, dir := 0, 0
		if math.Abs(sweep) > math.Pi {
			large = 1
		}
		if sweep > 0 {
			dir = 1
		}
		fmt.Fprintf(&b, "%s %s 0 %d %d ", num(r), num(r), large, dir)
		pt(to)
	}

	for _, e := range p.Elements {
		switch e.Kind {
		case geom.MoveTo:
			cmd('M')
			pt(e.To)
			hasCurrent = true
		case geom.LineTo:
			cmd('L')
			pt(e.To)
			hasCurrent = true
		case geom.QuadTo:
			cmd('Q')
			pt(e.Ctrl)
			b.WriteByte(' ')
			pt(e.To)
			hasCurrent = true
		case geom.ArcTo:
			if hasCurrent {
				cmd('L')
			} else {
				cmd('M')
			}
			pt(e.ArcStart())
			sweep := e.Sweep()
			if math.Abs(sweep) >= 2*math.Pi-1e-9 {
				mid := e.Center.OnCircle(e.Radius, e.Start+sweep/2)
				arc(e.Radius, sweep/2, mid)
				sweep /= 2
			}
			arc(e.Radius, sweep, e.ArcEnd())
			hasCurrent = true
		case geom.Close:
			cmd('Z')
			b.Truncate(b.Len() - 1)
		}
	}
	return b.String()
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
