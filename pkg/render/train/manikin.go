package train

import (
	"math"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/geom"
)

// Manikin is one stylized figure. All of its parts are fractions of the
// frame it is drawn into, so any frame size works.
type Manikin struct {
	frame geom.Rect
	color canvas.Color
}

// NewManikin returns a figure filling frame with a solid color.
func NewManikin(frame geom.Rect, color canvas.Color) Manikin {
	return Manikin{frame: frame, color: color}
}

func (m Manikin) Bounds() geom.Rect { return m.frame }

// Render draws head, torso, shoulders, arms and legs, in that order.
func (m Manikin) Render(s canvas.Surface) {
	s = canvas.Offset(s, m.frame.Origin())
	w, h := m.frame.W, m.frame.H

	// head
	r := 0.19 * w
	s.FillOval(geom.R(w/2-r, 0, 2*r, 2*r), m.color)

	torso := geom.R((w-0.51*w)/2, 0.18*h, 0.51*w, 0.4*h)
	s.FillRect(torso, m.color)

	// Shoulder caps share the torso's x offset as radius, which puts their
	// outer edge on the frame border.
	sr := torso.X
	s.FillPath(geom.PieSlice(geom.Pt(torso.X, torso.Y+sr), sr, math.Pi, 3*math.Pi/2, true), m.color)
	s.FillPath(geom.PieSlice(geom.Pt(w-torso.X, torso.Y+sr), sr, 0, 3*math.Pi/2, false), m.color)

	armW, armH := 0.16*w, 0.25*h
	m.limb(s, geom.R(0, torso.Y+sr, armW, armH))
	m.limb(s, geom.R(w-armW, torso.Y+sr, armW, armH))

	legW, legH := 0.21*w, h-torso.MaxY()
	m.limb(s, geom.R(torso.X, torso.MaxY(), legW, legH))
	m.limb(s, geom.R(torso.MaxX()-legW, torso.MaxY(), legW, legH))
}

// limb fills a bar whose bottom end is a semicircle, all within r.
func (m Manikin) limb(s canvas.Surface, r geom.Rect) {
	end := r.W / 2
	bar := r.H - end
	s.FillRect(geom.R(r.X, r.Y, r.W, bar), m.color)
	s.FillPath(geom.PieSlice(geom.Pt(r.X+end, r.Y+bar), end, 0, math.Pi, true), m.color)
}
