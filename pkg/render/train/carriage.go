package train

import (
	"strconv"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/geom"
	"github.com/matzehuels/capview/pkg/load"
	"github.com/matzehuels/capview/pkg/scale"
)

// Type selects a carriage outline.
type Type int

const (
	LeftEnd Type = iota
	Middle
	RightEnd
)

var typeNames = [...]string{"left-end", "middle", "right-end"}

func (t Type) String() string {
	if t < LeftEnd || t > RightEnd {
		return "unknown"
	}
	return typeNames[t]
}

// MarshalText encodes the type by name.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a name written by MarshalText.
func (t *Type) UnmarshalText(b []byte) error {
	for i, name := range typeNames {
		if string(b) == name {
			*t = Type(i)
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown carriage type %q", b)
}

const (
	lineWidthRatio    = 0.04
	cornerRadiusRatio = 0.17
	paddingRatio      = 1.8

	figuresPerCarriage = 5
	// Text turns white above this load, where badge fills are red.
	darkFillLoad = 0.8
)

// Carriage draws one carriage: outline, one figure per crowd level and an
// optional number badge in the bottom-right corner.
type Carriage struct {
	frame     geom.Rect
	load      float64
	kind      Type
	number    int
	hasNumber bool
	theme     Theme
}

// NewCarriage returns a carriage filling frame. Without [WithNumber] the
// badge is not drawn.
func NewCarriage(frame geom.Rect, v float64, kind Type, opts ...Option) Carriage {
	o := newOptions(opts)
	return Carriage{
		frame:     frame,
		load:      v,
		kind:      kind,
		number:    o.number,
		hasNumber: o.hasNumber,
		theme:     o.theme,
	}
}

func (c Carriage) Bounds() geom.Rect { return c.frame }
func (c Carriage) Load() float64     { return c.load }
func (c Carriage) Type() Type        { return c.kind }
func (c Carriage) Level() load.Level { return load.Classify(c.load) }

// Number returns the badge number, if the carriage has one.
func (c Carriage) Number() (int, bool) { return c.number, c.hasNumber }

func (c Carriage) LineWidth() float64    { return c.frame.H * lineWidthRatio }
func (c Carriage) CornerRadius() float64 { return c.frame.H * cornerRadiusRatio }
func (c Carriage) Padding() float64      { return c.LineWidth() * paddingRatio }

// Inner returns the outline rectangle in the carriage's local space.
func (c Carriage) Inner() geom.Rect {
	p := c.Padding()
	return c.frame.Local().Inset(p, p)
}

// Outline returns the outline path in local space.
func (c Carriage) Outline() *geom.Path {
	inner := c.Inner()
	switch c.kind {
	case LeftEnd:
		return geom.CarriageEnd(inner, c.CornerRadius(), false)
	case RightEnd:
		return geom.CarriageEnd(inner, c.CornerRadius(), true)
	default:
		return geom.RoundedRect(inner, c.CornerRadius())
	}
}

// FigureFrames returns the local frames of the drawn figures, left to
// right. Slots are sized for five figures whatever the level.
func (c Carriage) FigureFrames() []geom.Rect {
	p := c.Padding()
	inner := c.Inner()
	xGap, yGap := p, 1.5*p
	w := (inner.W-4*p)/figuresPerCarriage - xGap

	n := int(c.Level())
	frames := make([]geom.Rect, n)
	for i := range n {
		fi := float64(i)
		frames[i] = geom.R(3*p+(fi+0.5)*xGap+fi*w, p+yGap, w, inner.H-2*yGap)
	}
	return frames
}

// BadgeFrame returns the local badge square, aligned to the bottom-right
// corner of the full frame. Its share of the height grows as carriages get
// smaller.
func (c Carriage) BadgeFrame() geom.Rect {
	h := c.frame.H
	size := h * scale.ForHeight(h)
	return geom.R(c.frame.W-size, h-size, size, size)
}

// Badge returns the number badge in local space. ok is false when the
// carriage has no number.
func (c Carriage) Badge() (b Badge, ok bool) {
	if !c.hasNumber {
		return Badge{}, false
	}
	fg := c.theme.Text
	if c.load > darkFillLoad {
		fg = c.theme.TextOnRed
	}
	return NewBadge(c.BadgeFrame(), strconv.Itoa(c.number),
		WithFill(load.Color(c.load)),
		WithStroke(c.theme.Badge),
		WithTextColor(fg),
	), true
}

// Render draws the outline, then the figures left to right, then the badge.
func (c Carriage) Render(s canvas.Surface) {
	s = canvas.Offset(s, c.frame.Origin())
	s.StrokePath(c.Outline(), c.theme.Outline, c.LineWidth())
	for _, f := range c.FigureFrames() {
		NewManikin(f, c.theme.Figure).Render(s)
	}
	if b, ok := c.Badge(); ok {
		b.Render(s)
	}
}
