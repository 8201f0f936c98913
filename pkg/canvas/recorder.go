package canvas

import (
	"github.com/matzehuels/capview/pkg/geom"
)

// OpKind names a recorded draw call.
type OpKind string

const (
	OpFillOval   OpKind = "fill_oval"
	OpStrokeOval OpKind = "stroke_oval"
	OpFillRect   OpKind = "fill_rect"
	OpFillPath   OpKind = "fill_path"
	OpStrokePath OpKind = "stroke_path"
	OpDrawText   OpKind = "draw_text"
)

// Op is one recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind      OpKind      `json:"op"`
	Rect      *geom.Rect  `json:"rect,omitempty"`
	Path      *geom.Path  `json:"path,omitempty"`
	Color     string      `json:"color"`
	LineWidth float64     `json:"line_width,omitempty"`
	Text      string      `json:"text,omitempty"`
	At        *geom.Point `json:"at,omitempty"`
	Font      *Font       `json:"font,omitempty"`
}

// Recorder is a Surface that stores every draw call in order. Text is
// measured with the embedded fonts.
type Recorder struct {
	Ops []Op
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) FillOval(rect geom.Rect, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillOval, Rect: &rect, Color: c.Hex()})
}

func (r *Recorder) StrokeOval(rect geom.Rect, c Color, lineWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeOval, Rect: &rect, Color: c.Hex(), LineWidth: lineWidth})
}

func (r *Recorder) FillRect(rect geom.Rect, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: &rect, Color: c.Hex()})
}

func (r *Recorder) FillPath(p *geom.Path, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPath, Path: p, Color: c.Hex()})
}

func (r *Recorder) StrokePath(p *geom.Path, c Color, lineWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePath, Path: p, Color: c.Hex(), LineWidth: lineWidth})
}

func (r *Recorder) MeasureText(text string, f Font) geom.Size {
	return MeasureText(text, f)
}

func (r *Recorder) DrawText(text string, at geom.Point, f Font, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawText, Text: text, At: &at, Font: &f, Color: c.Hex()})
}

var _ Surface = (*Recorder)(nil)
