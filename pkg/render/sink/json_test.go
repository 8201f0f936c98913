package sink

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/geom"
	"github.com/matzehuels/capview/pkg/render/train"
)

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testTrain(t))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Bounds.W != 660 {
		t.Errorf("Bounds.W = %v, want 660", out.Bounds.W)
	}
	if out.Train == nil || len(out.Train.Carriages) != 4 {
		t.Fatalf("Train = %+v, want 4 carriages", out.Train)
	}
	if out.Train.Carriages[3].Number != 4 {
		t.Errorf("last number = %d, want 4", out.Train.Carriages[3].Number)
	}
	if len(out.Ops) == 0 || out.Ops[0].Kind != canvas.OpStrokePath {
		t.Errorf("ops should start with the first outline, got %d ops", len(out.Ops))
	}
}

func TestRenderJSONOptions(t *testing.T) {
	data, err := RenderJSON(testTrain(t), WithoutOps(), WithJSONIndent())
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if strings.Contains(s, `"ops"`) {
		t.Error("ops present despite WithoutOps")
	}
	if !strings.Contains(s, "\n  \"train\"") {
		t.Errorf("output not indented: %.80s", s)
	}
}

func TestRenderJSONNotATrain(t *testing.T) {
	data, err := RenderJSON(train.NewManikin(geom.R(0, 0, 28, 66), canvas.DarkGray))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"train"`) {
		t.Error("train description on a manikin")
	}
}

func TestRenderJSONInfiniteLoad(t *testing.T) {
	tr, err := train.New([]float64{1, math.Inf(1)}, geom.Size{W: 660, H: 300})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RenderJSON(tr); err == nil {
		t.Error("RenderJSON() should fail on a non-finite load")
	}
}

func TestRenderJSONExtremeLoads(t *testing.T) {
	tr, err := train.New([]float64{0, 1e300, -1e300}, geom.Size{W: 660, H: 300})
	if err != nil {
		t.Fatal(err)
	}
	data, err := RenderJSON(tr, WithoutOps())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !json.Valid(data) {
		t.Errorf("invalid JSON: %s", data)
	}
}
