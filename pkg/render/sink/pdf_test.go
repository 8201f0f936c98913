package sink

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/render"
)

func TestRenderPDF(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := RenderPDF(context.Background(), testTrain(t), WithBackground(canvas.White))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestRenderPDFWithoutConverter(t *testing.T) {
	t.Setenv(render.EnvConverter, filepath.Join(t.TempDir(), "missing"))
	if _, err := RenderPDF(context.Background(), testTrain(t)); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("RenderPDF() = %v, want UNSUPPORTED", err)
	}
}
