package geom

import "math"

// ElementKind identifies a path element.
type ElementKind int

const (
	MoveTo ElementKind = iota
	LineTo
	QuadTo
	ArcTo
	Close
)

var elementNames = [...]string{"move", "line", "quad", "arc", "close"}

func (k ElementKind) String() string {
	if k < 0 || int(k) >= len(elementNames) {
		return "unknown"
	}
	return elementNames[k]
}

// Element is one step of a Path.
//
// MoveTo and LineTo use To. QuadTo uses Ctrl and To. ArcTo describes a
// circular arc around Center with Radius from angle Start to End; when
// Clockwise is set the angle increases from Start to End. As with the
// usual bezier-path semantics, an arc implicitly starts with a line from
// the current point to its first point.
type Element struct {
	Kind      ElementKind `json:"kind"`
	To        Point       `json:"to,omitzero"`
	Ctrl      Point       `json:"ctrl,omitzero"`
	Center    Point       `json:"center,omitzero"`
	Radius    float64     `json:"radius,omitempty"`
	Start     float64     `json:"start,omitempty"`
	End       float64     `json:"end,omitempty"`
	Clockwise bool        `json:"clockwise,omitempty"`
}

// ArcStart returns the first point of an ArcTo element.
func (e Element) ArcStart() Point { return e.Center.OnCircle(e.Radius, e.Start) }

// ArcEnd returns the last point of an ArcTo element.
func (e Element) ArcEnd() Point { return e.Center.OnCircle(e.Radius, e.End) }

// Sweep returns the signed angle covered by an ArcTo element, positive when
// clockwise. The magnitude is in (0, 2π]; an arc whose start and end
// coincide is a full turn.
func (e Element) Sweep() float64 {
	d := e.End - e.Start
	if !e.Clockwise {
		d = -d
	}
	d = math.Mod(d, 2*math.Pi)
	if d <= 0 {
		d += 2 * math.Pi
	}
	if !e.Clockwise {
		return -d
	}
	return d
}

// Path is an ordered list of drawing elements. The zero value is an empty
// path ready to use. Builder methods return the receiver so calls chain.
type Path struct {
	Elements []Element `json:"elements"`
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

// MoveTo starts a new subpath.
func (p *Path) MoveTo(to Point) *Path {
	p.Elements = append(p.Elements, Element{Kind: MoveTo, To: to})
	return p
}

// LineTo adds a straight line to the given point.
func (p *Path) LineTo(to Point) *Path {
	p.Elements = append(p.Elements, Element{Kind: LineTo, To: to})
	return p
}

// QuadTo adds a quadratic bezier curve with control point ctrl.
func (p *Path) QuadTo(to, ctrl Point) *Path {
	p.Elements = append(p.Elements, Element{Kind: QuadTo, To: to, Ctrl: ctrl})
	return p
}

// Arc adds a circular arc.
func (p *Path) Arc(center Point, radius, start, end float64, clockwise bool) *Path {
	p.Elements = append(p.Elements, Element{
		Kind:      ArcTo,
		Center:    center,
		Radius:    radius,
		Start:     start,
		End:       end,
		Clockwise: clockwise,
	})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Elements = append(p.Elements, Element{Kind: Close})
	return p
}

// Len returns the number of elements.
func (p *Path) Len() int { return len(p.Elements) }

// Translate returns a copy of the path moved by d.
func (p *Path) Translate(d Point) *Path {
	out := &Path{Elements: make([]Element, len(p.Elements))}
	for i, e := range p.Elements {
		switch e.Kind {
		case MoveTo, LineTo:
			e.To = e.To.Add(d)
		case QuadTo:
			e.To = e.To.Add(d)
			e.Ctrl = e.Ctrl.Add(d)
		case ArcTo:
			e.Center = e.Center.Add(d)
		}
		out.Elements[i] = e
	}
	return out
}

// PieSlice returns a closed circle segment as used in a pie chart: a line
// from the center to the arc, the arc itself, and back to the center.
func PieSlice(center Point, radius, start, end float64, clockwise bool) *Path {
	return NewPath().
		MoveTo(center).
		Arc(center, radius, start, end, clockwise).
		Close()
}

// RoundedRect returns a closed rectangle whose corners are quarter circles
// of the given radius. The radius is clamped to half the shorter side.
func RoundedRect(r Rect, radius float64) *Path {
	radius = max(0, min(radius, r.W/2, r.H/2))
	x0, y0, x1, y1 := r.X, r.Y, r.MaxX(), r.MaxY()
	return NewPath().
		MoveTo(Pt(x0+radius, y0)).
		LineTo(Pt(x1-radius, y0)).
		Arc(Pt(x1-radius, y0+radius), radius, -math.Pi/2, 0, true).
		LineTo(Pt(x1, y1-radius)).
		Arc(Pt(x1-radius, y1-radius), radius, 0, math.Pi/2, true).
		LineTo(Pt(x0+radius, y1)).
		Arc(Pt(x0+radius, y1-radius), radius, math.Pi/2, math.Pi, true).
		LineTo(Pt(x0, y0+radius)).
		Arc(Pt(x0+radius, y0+radius), radius, math.Pi, 3*math.Pi/2, true).
		Close()
}

// CarriageEnd returns the outline of an end carriage: a rounded rectangle
// whose top-left corner is replaced by a 45° chamfer reaching down to 35%
// of the height. The chamfer's two joins are rounded with half the corner
// radius. With mirror set, the outline is reflected about the vertical
// centerline so the chamfer sits on the top-right corner.
func CarriageEnd(r Rect, cornerRadius float64, mirror bool) *Path {
	a := 0.35 * r.H
	cr := cornerRadius
	h := r.H
	w := r.W
	d := (cr / 2) / math.Sqrt2
	o := r.Origin()

	pt := func(x, y float64) Point {
		if mirror {
			x = w - x
		}
		return Pt(x, y).Add(o)
	}

	start := pt(d, a-d)
	return NewPath().
		MoveTo(start).
		LineTo(pt(a-d, d)).
		QuadTo(pt(a+cr/2, 0), pt(a, 0)).
		LineTo(pt(w-cr, 0)).
		QuadTo(pt(w, cr), pt(w, 0)).
		LineTo(pt(w, h-cr)).
		QuadTo(pt(w-cr, h), pt(w, h)).
		LineTo(pt(cr, h)).
		QuadTo(pt(0, h-cr), pt(0, h)).
		LineTo(pt(0, a+cr/2)).
		QuadTo(start, pt(0, a)).
		Close()
}
