package geom

import (
	"math"
	"testing"
)

func TestElementSweep(t *testing.T) {
	tests := []struct {
		name string
		elem Element
		want float64
	}{
		{
			name: "clockwise quarter",
			elem: Element{Kind: ArcTo, Start: math.Pi, End: 3 * math.Pi / 2, Clockwise: true},
			want: math.Pi / 2,
		},
		{
			name: "counter-clockwise wraps through zero",
			elem: Element{Kind: ArcTo, Start: 0, End: 3 * math.Pi / 2},
			want: -math.Pi / 2,
		},
		{
			name: "clockwise half",
			elem: Element{Kind: ArcTo, Start: 0, End: math.Pi, Clockwise: true},
			want: math.Pi,
		},
		{
			name: "full turn when endpoints coincide",
			elem: Element{Kind: ArcTo, Start: 1, End: 1, Clockwise: true},
			want: 2 * math.Pi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.elem.Sweep(); !near(got, tt.want) {
				t.Errorf("Sweep() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPieSlice(t *testing.T) {
	c := Pt(5, 5)
	p := PieSlice(c, 5, math.Pi, 3*math.Pi/2, true)

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if p.Elements[0].Kind != MoveTo || p.Elements[0].To != c {
		t.Errorf("first element = %+v, want move to center", p.Elements[0])
	}
	arc := p.Elements[1]
	if arc.Kind != ArcTo {
		t.Fatalf("second element kind = %v, want arc", arc.Kind)
	}
	if !nearPt(arc.ArcStart(), Pt(0, 5)) {
		t.Errorf("ArcStart() = %v, want (0,5)", arc.ArcStart())
	}
	if !nearPt(arc.ArcEnd(), Pt(5, 0)) {
		t.Errorf("ArcEnd() = %v, want (5,0)", arc.ArcEnd())
	}
	if p.Elements[2].Kind != Close {
		t.Errorf("last element kind = %v, want close", p.Elements[2].Kind)
	}
}

func TestRoundedRect(t *testing.T) {
	p := RoundedRect(R(10, 10, 100, 40), 8)

	if p.Elements[0].To != Pt(18, 10) {
		t.Errorf("start = %v, want (18,10)", p.Elements[0].To)
	}

	var arcs int
	for _, e := range p.Elements {
		if e.Kind != ArcTo {
			continue
		}
		arcs++
		if e.Radius != 8 {
			t.Errorf("arc radius = %v, want 8", e.Radius)
		}
		if !near(e.Sweep(), math.Pi/2) {
			t.Errorf("arc sweep = %v, want π/2", e.Sweep())
		}
	}
	if arcs != 4 {
		t.Errorf("arc count = %d, want 4", arcs)
	}
	if last := p.Elements[p.Len()-1]; last.Kind != Close {
		t.Errorf("last element kind = %v, want close", last.Kind)
	}
}

func TestRoundedRectClampsRadius(t *testing.T) {
	p := RoundedRect(R(0, 0, 20, 10), 30)
	for _, e := range p.Elements {
		if e.Kind == ArcTo && e.Radius != 5 {
			t.Fatalf("radius = %v, want clamp to 5", e.Radius)
		}
	}
}

func TestCarriageEnd(t *testing.T) {
	r := R(0, 0, 100, 40)
	cr := 8.0
	a := 0.35 * 40
	d := (cr / 2) / math.Sqrt2

	p := CarriageEnd(r, cr, false)
	if p.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", p.Len())
	}

	start := p.Elements[0]
	if start.Kind != MoveTo || !nearPt(start.To, Pt(d, a-d)) {
		t.Errorf("start = %+v, want move to (%v,%v)", start, d, a-d)
	}

	// The chamfer is a 45° line.
	chamfer := p.Elements[1].To
	if dx, dy := chamfer.X-start.To.X, start.To.Y-chamfer.Y; !near(dx, dy) {
		t.Errorf("chamfer slope dx=%v dy=%v, want equal", dx, dy)
	}

	// The outline curves back to its starting point and closes, so strokes
	// join at the chamfer instead of leaving a cap.
	if k := p.Elements[p.Len()-1].Kind; k != Close {
		t.Errorf("last element kind = %v, want Close", k)
	}
	last := p.Elements[p.Len()-2]
	if last.Kind != QuadTo || !nearPt(last.To, start.To) {
		t.Errorf("last curve = %+v, want quad back to start", last)
	}
	if last.Ctrl != Pt(0, a) {
		t.Errorf("last control = %v, want (0,%v)", last.Ctrl, a)
	}
}

func TestCarriageEndMirror(t *testing.T) {
	r := R(20, 5, 100, 40)
	left := CarriageEnd(r, 6, false)
	right := CarriageEnd(r, 6, true)

	if left.Len() != right.Len() {
		t.Fatalf("lengths differ: %d vs %d", left.Len(), right.Len())
	}
	mid := r.Center().X
	for i := range left.Elements {
		l, m := left.Elements[i], right.Elements[i]
		if l.Kind != m.Kind {
			t.Errorf("element %d: kinds %v and %v differ", i, l.Kind, m.Kind)
		}
		if l.Kind == Close {
			continue
		}
		if !near(l.To.X-mid, mid-m.To.X) || !near(l.To.Y, m.To.Y) {
			t.Errorf("element %d: %v is not the mirror of %v", i, m.To, l.To)
		}
		if l.Kind == QuadTo && (!near(l.Ctrl.X-mid, mid-m.Ctrl.X) || !near(l.Ctrl.Y, m.Ctrl.Y)) {
			t.Errorf("element %d: control %v is not the mirror of %v", i, m.Ctrl, l.Ctrl)
		}
	}
}

func TestPathTranslate(t *testing.T) {
	p := NewPath().
		MoveTo(Pt(0, 0)).
		QuadTo(Pt(2, 2), Pt(1, 0)).
		Arc(Pt(1, 1), 1, 0, math.Pi, true).
		Close()

	moved := p.Translate(Pt(10, 20))
	if moved.Elements[0].To != Pt(10, 20) {
		t.Errorf("move = %v", moved.Elements[0].To)
	}
	if moved.Elements[1].To != Pt(12, 22) || moved.Elements[1].Ctrl != Pt(11, 20) {
		t.Errorf("quad = %+v", moved.Elements[1])
	}
	if moved.Elements[2].Center != Pt(11, 21) {
		t.Errorf("arc center = %v", moved.Elements[2].Center)
	}
	if p.Elements[0].To != Pt(0, 0) {
		t.Error("Translate modified the original path")
	}
}
