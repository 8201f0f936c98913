// Package train draws train occupancy diagrams.
//
// # Overview
//
// A train is a strip of carriages. Each carriage shows its crowd level as a
// row of up to five stylized figures and carries a round badge with its
// number, colored from green (empty) to red (full). The two outer
// carriages get a chamfered nose so the strip reads as a train.
//
// The package is built from four renderers, each an immutable value with a
// single Render method:
//
//   - [Manikin]: one figure, drawn from fixed proportions of its frame
//   - [Badge]: a filled, stroked circle with centered text
//   - [Carriage]: outline, figures and badge for one load value
//   - [Train]: carriages laid out by [ComputeLayout]
//
// # Usage
//
//	t, err := train.New([]float64{1.3, 0.2, 0.42, 0.9}, geom.Size{W: 660, H: 300})
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(t)
//
// # Layout
//
// Carriages keep a 2.2:1 aspect ratio and are separated by a 5 unit
// buffer. At the requested height the train may be wider than allowed;
// in that case every carriage shrinks by the same factor so the strip
// fills the width exactly.
//
// # Coordinates
//
// All renderers use a top-left origin with y growing downward. A renderer
// draws in its own local space starting at (0,0) and its parent moves it
// into place with [canvas.Offset], so the draw calls of a carriage are the
// same wherever the carriage sits in the train.
package train
