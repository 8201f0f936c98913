package pipeline

import (
	"context"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/render/sink"
)

// Encode renders t in a single format. Any renderable works; a train also
// carries its layout description in JSON output. A zero scale means
// DefaultScale.
func Encode(ctx context.Context, t canvas.Renderable, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(t), nil
	case FormatPNG:
		scale := opts.Scale
		if scale == 0 {
			scale = DefaultScale
		}
		return sink.RenderPNG(t, sink.WithScale(scale))
	case FormatPDF:
		return sink.RenderPDF(ctx, t)
	case FormatJSON:
		return sink.RenderJSON(t, sink.WithJSONIndent())
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}
