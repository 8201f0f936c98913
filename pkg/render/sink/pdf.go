package sink

import (
	"context"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/render"
)

// RenderPDF draws r as SVG with opts and converts it with
// [render.ToPDF], so PDF output matches SVG output exactly.
func RenderPDF(ctx context.Context, r canvas.Renderable, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(r, opts...))
}
