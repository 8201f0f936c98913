// Package render holds the output side of capview.
//
// # Overview
//
//   - [train]: the occupancy diagram itself, drawn onto a [canvas.Surface]
//   - [sink]: encoders that turn any [canvas.Renderable] into SVG, PNG, PDF
//     or JSON
//
// # Format Conversion
//
// [ToPDF] converts SVG to PDF with the external rsvg-convert tool (from
// librsvg). PNG output does not need it; it is rasterized in process.
//
//	svg := sink.RenderSVG(t)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [train]: github.com/matzehuels/capview/pkg/render/train
// [sink]: github.com/matzehuels/capview/pkg/render/sink
// [canvas.Surface]: github.com/matzehuels/capview/pkg/canvas.Surface
// [canvas.Renderable]: github.com/matzehuels/capview/pkg/canvas.Renderable
package render
