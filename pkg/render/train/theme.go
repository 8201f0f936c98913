package train

import "github.com/matzehuels/capview/pkg/canvas"

// Theme holds the fixed colors of a diagram. Badge fills are not themed;
// they always encode the carriage load.
type Theme struct {
	Outline   canvas.Color // carriage outline
	Figure    canvas.Color // manikins
	Badge     canvas.Color // badge border
	Text      canvas.Color // badge number on light fills
	TextOnRed canvas.Color // badge number on busy carriages
}

// DefaultTheme returns dark gray drawing with white numbers on busy badges.
func DefaultTheme() Theme {
	return Theme{
		Outline:   canvas.DarkGray,
		Figure:    canvas.DarkGray,
		Badge:     canvas.DarkGray,
		Text:      canvas.DarkGray,
		TextOnRed: canvas.White,
	}
}

// Option configures a Carriage or a Train.
type Option func(*options)

type options struct {
	theme     Theme
	number    int
	hasNumber bool
}

func newOptions(opts []Option) options {
	o := options{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTheme sets the colors used for drawing.
func WithTheme(t Theme) Option { return func(o *options) { o.theme = t } }

// WithNumber gives a carriage a number badge. Carriages built by [New] are
// numbered from 1 regardless of this option.
func WithNumber(n int) Option {
	return func(o *options) { o.number, o.hasNumber = n, true }
}
