package sink

import (
	"encoding/json"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/geom"
	"github.com/matzehuels/capview/pkg/render/train"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
	noOps  bool
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// WithoutOps leaves the draw call list out, keeping only the bounds and the
// train description.
func WithoutOps() JSONOption { return func(r *jsonRenderer) { r.noOps = true } }

type jsonOutput struct {
	Bounds geom.Rect          `json:"bounds"`
	Train  *train.Description `json:"train,omitempty"`
	Ops    []canvas.Op        `json:"ops,omitempty"`
}

// RenderJSON exports the draw calls r makes, in order. When r is a
// *train.Train the output also carries its layout and per-carriage values.
func RenderJSON(r canvas.Renderable, opts ...JSONOption) ([]byte, error) {
	cfg := jsonRenderer{}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := jsonOutput{Bounds: r.Bounds()}
	if t, ok := r.(*train.Train); ok {
		d := t.Describe()
		out.Train = &d
	}
	if !cfg.noOps {
		rec := canvas.NewRecorder()
		r.Render(rec)
		out.Ops = rec.Ops
	}

	var (
		data []byte
		err  error
	)
	if cfg.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return data, nil
}
