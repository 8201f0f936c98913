// Package load classifies carriage load fractions.
//
// A load is the fraction of a carriage's nominal capacity in use: 0 is
// empty, 1 is full, and values above 1 mean the carriage is overcrowded.
// [Classify] turns it into one of six crowd levels, which decides how many
// figures a carriage shows, and [Color] turns it into the badge color, from
// green for an empty carriage to red for a full one.
package load

import (
	"math"

	"github.com/matzehuels/capview/pkg/canvas"
)

// Level is a discrete crowd density from Empty (0) to Full (5).
type Level int

const (
	Empty Level = iota
	Light
	Moderate
	Busy
	Crowded
	Full
)

// MaxLevel is the highest level.
const MaxLevel = Full

var levelNames = [...]string{"empty", "light", "moderate", "busy", "crowded", "full"}

func (l Level) String() string {
	if l < Empty || l > Full {
		return "unknown"
	}
	return levelNames[l]
}

// Upper edges of levels 1 to 3. Kept as literals so that a load sitting
// exactly on a decimal edge such as 0.3 lands in the upper bin.
var edges = [...]float64{0.3, 0.5, 0.7}

const (
	low  = 0.1
	high = 0.9

	saturation = 0.7
	brightness = 1.0
)

// Classify maps a load to its crowd level. Loads below 0.1 are Empty, loads
// of 0.9 and above are Full, and the range in between splits into four
// bins of width 0.2, each closed below and open above. NaN is treated as
// Empty.
func Classify(v float64) Level {
	switch {
	case math.IsNaN(v), v < low:
		return Empty
	case v >= high:
		return Full
	}
	for i, e := range edges {
		if v < e {
			return Light + Level(i)
		}
	}
	return Crowded
}

// Hue returns the badge hue for a load: 100/360 for an empty carriage,
// falling linearly to 0 at a load of 1. Loads above 1 share the hue of a
// full carriage and negative loads (or NaN) that of an empty one.
func Hue(v float64) float64 {
	switch {
	case v > 1.0:
		return 0
	case !(v > 0):
		v = 0
	}
	percent := (1 - v) * 100
	return percent / 360
}

// Color returns the badge fill color for a load.
func Color(v float64) canvas.Color {
	return canvas.HSB(Hue(v), saturation, brightness)
}
