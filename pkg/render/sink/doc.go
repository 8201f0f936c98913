// Package sink encodes rendered diagrams.
//
// Every sink accepts a [canvas.Renderable], so a whole train, a single
// carriage or a lone badge can be exported the same way:
//
//   - [RenderSVG]: SVG 1.1 text
//   - [RenderPNG]: raster image, drawn in process with fogleman/gg
//   - [RenderPDF]: SVG converted by rsvg-convert
//   - [RenderJSON]: the recorded draw calls, plus the train layout when the
//     renderable is a train
//
// Output is deterministic: rendering the same input twice produces the
// same bytes.
//
//	t, _ := train.New(loads, geom.Size{W: 660, H: 300})
//	svg := sink.RenderSVG(t, sink.WithBackground(canvas.White))
//	png, err := sink.RenderPNG(t, sink.WithScale(2))
//
// [canvas.Renderable]: github.com/matzehuels/capview/pkg/canvas.Renderable
package sink
