// Package scale provides the logistic curves used to ease visual sizes.
//
// The badge drawn on each carriage would become unreadable on a small
// train if it kept a fixed share of the carriage height. [ForHeight] eases
// that share from 0.6 on short carriages down to 0.3 on tall ones, with the
// transition centered on a carriage height of 50 units.
package scale

import "math"

// Curve is a logistic function L / (1 + e^(-K(x - X0))).
type Curve struct {
	L  float64 // maximum value
	K  float64 // steepness
	X0 float64 // midpoint
}

// Standard is the unit logistic curve (L=1, k=1, x0=0).
var Standard = Curve{L: 1, K: 1, X0: 0}

// At evaluates the curve at x.
func (c Curve) At(x float64) float64 {
	return Sigmoid(x, c.L, c.K, c.X0)
}

// Sigmoid returns L / (1 + e^(-k(x - x0))).
func Sigmoid(x, L, k, x0 float64) float64 {
	return L / (1 + math.Exp(-k*(x-x0)))
}

const (
	badgeMax       = 0.6
	badgeMin       = 0.3
	badgeSteepness = 0.08
	badgeMidHeight = 50.0
)

var badgeCurve = Curve{L: badgeMax - badgeMin, K: badgeSteepness, X0: badgeMidHeight}

// ForHeight returns the badge-to-carriage size ratio for a carriage of
// height h.
func ForHeight(h float64) float64 {
	return badgeMax - badgeCurve.At(h)
}
