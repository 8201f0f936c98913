package train

import (
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/geom"
)

const (
	// CarriageBuffer is the gap between neighbouring carriages.
	CarriageBuffer = 5.0
	// AspectRatio is carriage width over height.
	AspectRatio = 2.2
)

// Layout is the sizing of a train of Count carriages.
type Layout struct {
	Count          int       `json:"count"`
	CarriageWidth  float64   `json:"carriage_width"`
	CarriageHeight float64   `json:"carriage_height"`
	Size           geom.Size `json:"size"`
}

// ComputeLayout sizes n carriages to fit maxBounds. Carriages take the full
// height unless the train would then be too wide, in which case all of them
// shrink uniformly so the train fills the width exactly. The height is
// never capped on its own.
func ComputeLayout(n int, maxBounds geom.Size) (Layout, error) {
	if n < 1 {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "train needs at least one carriage")
	}
	if err := errors.ValidateBounds(maxBounds.W, maxBounds.H); err != nil {
		return Layout{}, err
	}

	count := float64(n)
	gaps := (count - 1) * CarriageBuffer

	h := maxBounds.H
	w := h * AspectRatio
	width := gaps + count*w

	if width > maxBounds.W {
		w = (maxBounds.W - gaps) / count
		h = w / AspectRatio
		width = maxBounds.W
	}
	if !(w > 0) {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput,
			"width %v too small for %d carriages", maxBounds.W, n)
	}

	return Layout{
		Count:          n,
		CarriageWidth:  w,
		CarriageHeight: h,
		Size:           geom.Size{W: width, H: h},
	}, nil
}

// Frame returns the frame of carriage i.
func (l Layout) Frame(i int) geom.Rect {
	return geom.R(float64(i)*(l.CarriageWidth+CarriageBuffer), 0, l.CarriageWidth, l.CarriageHeight)
}

// TypeAt returns the outline type of carriage i in a train of n. A single
// carriage is a LeftEnd.
func TypeAt(i, n int) Type {
	switch i {
	case 0:
		return LeftEnd
	case n - 1:
		return RightEnd
	default:
		return Middle
	}
}
