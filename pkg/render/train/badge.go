package train

import (
	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/geom"
)

const (
	maxBadgeLineWidth = 8.0
	badgeFontRatio    = 0.65
)

// Badge is a circle with a centered label.
type Badge struct {
	frame  geom.Rect
	text   string
	fill   canvas.Color
	stroke canvas.Color
	font   canvas.Color
}

// BadgeOption configures a Badge.
type BadgeOption func(*Badge)

// WithFill sets the circle's fill color (default white).
func WithFill(c canvas.Color) BadgeOption { return func(b *Badge) { b.fill = c } }

// WithStroke sets the border color (default dark gray).
func WithStroke(c canvas.Color) BadgeOption { return func(b *Badge) { b.stroke = c } }

// WithTextColor sets the label color (default dark gray).
func WithTextColor(c canvas.Color) BadgeOption { return func(b *Badge) { b.font = c } }

// NewBadge returns a badge filling frame. An empty text draws the circle
// alone.
func NewBadge(frame geom.Rect, text string, opts ...BadgeOption) Badge {
	b := Badge{
		frame:  frame,
		text:   text,
		fill:   canvas.White,
		stroke: canvas.DarkGray,
		font:   canvas.DarkGray,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b Badge) Bounds() geom.Rect { return b.frame }

// Text returns the label.
func (b Badge) Text() string { return b.text }

// LineWidth is a tenth of the shorter side, capped at 8.
func (b Badge) LineWidth() float64 {
	return min(min(b.frame.W, b.frame.H)/10, maxBadgeLineWidth)
}

// Render fills and strokes the circle, then draws the label. The circle is
// inset by half the line width so the stroke stays inside the frame.
func (b Badge) Render(s canvas.Surface) {
	s = canvas.Offset(s, b.frame.Origin())
	lw := b.LineWidth()
	inset := b.frame.Local().Inset(lw/2, lw/2)

	s.FillOval(inset, b.fill)
	s.StrokeOval(inset, b.stroke, lw)

	if b.text == "" {
		return
	}
	f := canvas.Font{Size: inset.H * badgeFontRatio, Bold: true}
	size := s.MeasureText(b.text, f)
	at := geom.Pt(
		lw/2+(inset.W-size.W)/2,
		lw/2+(inset.H-size.H)/2,
	)
	s.DrawText(b.text, at, f, b.font)
}
