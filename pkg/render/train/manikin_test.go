package train

import (
	"math"
	"testing"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/geom"
)

func TestManikinDrawCalls(t *testing.T) {
	rec := canvas.NewRecorder()
	NewManikin(geom.R(0, 0, 280, 660), canvas.DarkGray).Render(rec)

	// head; torso + 4 limb bars; 2 shoulders + 4 limb ends
	if got := rec.Count(canvas.OpFillOval); got != 1 {
		t.Errorf("ovals = %d, want 1", got)
	}
	if got := rec.Count(canvas.OpFillRect); got != 5 {
		t.Errorf("rects = %d, want 5", got)
	}
	if got := rec.Count(canvas.OpFillPath); got != 6 {
		t.Errorf("paths = %d, want 6", got)
	}
	if len(rec.Ops) != 12 {
		t.Errorf("ops = %d, want 12 (no strokes or text)", len(rec.Ops))
	}
	for _, op := range rec.Ops {
		if op.Color != canvas.DarkGray.Hex() {
			t.Errorf("%s drawn in %s, want %s", op.Kind, op.Color, canvas.DarkGray.Hex())
		}
	}
}

func TestManikinProportions(t *testing.T) {
	w, h := 280.0, 660.0
	rec := canvas.NewRecorder()
	NewManikin(geom.R(0, 0, w, h), canvas.DarkGray).Render(rec)

	head := *rec.Ops[0].Rect
	if !nearRect(head, geom.R(w/2-0.19*w, 0, 0.38*w, 0.38*w)) {
		t.Errorf("head = %v", head)
	}

	torso := *rec.Ops[1].Rect
	wantTorso := geom.R((w-0.51*w)/2, 0.18*h, 0.51*w, 0.4*h)
	if !nearRect(torso, wantTorso) {
		t.Errorf("torso = %v, want %v", torso, wantTorso)
	}

	left := rec.Ops[2].Path.Elements[1]
	if left.Radius != torso.X || !left.Clockwise || math.Abs(left.Sweep()-math.Pi/2) > eps {
		t.Errorf("left shoulder = %+v", left)
	}
	right := rec.Ops[3].Path.Elements[1]
	if right.Center.X != w-torso.X || right.Clockwise || math.Abs(right.Sweep()+math.Pi/2) > eps {
		t.Errorf("right shoulder = %+v", right)
	}

	// Left arm is flush with the frame edge, right arm likewise.
	leftArm := *rec.Ops[4].Rect
	rightArm := *rec.Ops[6].Rect
	if leftArm.X != 0 || !near(rightArm.MaxX(), w) {
		t.Errorf("arms at %v and %v", leftArm, rightArm)
	}
	if !near(leftArm.W, 0.16*w) || !near(leftArm.H, 0.25*h-0.08*w) {
		t.Errorf("arm bar = %v", leftArm)
	}

	leftLeg := *rec.Ops[8].Rect
	rightLeg := *rec.Ops[10].Rect
	if leftLeg.X != torso.X || !near(rightLeg.MaxX(), torso.MaxX()) {
		t.Errorf("legs at %v and %v, torso %v", leftLeg, rightLeg, torso)
	}
	if leftLeg.Y != torso.MaxY() {
		t.Errorf("legs start at %v, want torso bottom %v", leftLeg.Y, torso.MaxY())
	}

	// Each leg's rounded end touches the bottom of the frame.
	foot := rec.Ops[9].Path.Elements[1]
	if !near(foot.Center.Y+foot.Radius, h) {
		t.Errorf("foot bottom = %v, want %v", foot.Center.Y+foot.Radius, h)
	}
}

func TestManikinDrawsInFrame(t *testing.T) {
	at := geom.R(100, 50, 28, 66)
	rec := canvas.NewRecorder()
	NewManikin(at, canvas.White).Render(rec)

	for _, op := range rec.Ops {
		if op.Rect == nil {
			continue
		}
		r := *op.Rect
		if r.X < at.X-eps || r.Y < at.Y-eps || r.MaxX() > at.MaxX()+eps || r.MaxY() > at.MaxY()+eps {
			t.Errorf("%s %v escapes frame %v", op.Kind, r, at)
		}
	}
}

func nearRect(a, b geom.Rect) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.W, b.W) && near(a.H, b.H)
}
