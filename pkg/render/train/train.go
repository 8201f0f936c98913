package train

import (
	"math"
	"slices"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/geom"
)

// Train is a laid-out strip of numbered carriages. It is immutable once
// built.
type Train struct {
	layout    Layout
	carriages []Carriage
}

// New lays out one carriage per load within maxBounds. Carriages are
// numbered from 1 in order. It fails with INVALID_INPUT when loads is empty
// or contains NaN or an infinite load, or when maxBounds is not a positive
// size.
func New(loads []float64, maxBounds geom.Size, opts ...Option) (*Train, error) {
	for i, v := range loads {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "load %d is not a finite number", i+1)
		}
	}
	l, err := ComputeLayout(len(loads), maxBounds)
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	t := &Train{layout: l, carriages: make([]Carriage, len(loads))}
	for i, v := range loads {
		t.carriages[i] = NewCarriage(l.Frame(i), v, TypeAt(i, len(loads)),
			WithTheme(o.theme), WithNumber(i+1))
	}
	return t, nil
}

func (t *Train) Bounds() geom.Rect {
	return geom.R(0, 0, t.layout.Size.W, t.layout.Size.H)
}

func (t *Train) Layout() Layout { return t.layout }
func (t *Train) Len() int       { return len(t.carriages) }

// Carriages returns the carriages in order.
func (t *Train) Carriages() []Carriage { return slices.Clone(t.carriages) }

// Loads returns the load of every carriage in order.
func (t *Train) Loads() []float64 {
	loads := make([]float64, len(t.carriages))
	for i, c := range t.carriages {
		loads[i] = c.load
	}
	return loads
}

// Render draws every carriage, left to right.
func (t *Train) Render(s canvas.Surface) {
	for _, c := range t.carriages {
		c.Render(s)
	}
}

var (
	_ canvas.Renderable = (*Train)(nil)
	_ canvas.Renderable = Carriage{}
	_ canvas.Renderable = Badge{}
	_ canvas.Renderable = Manikin{}
)
