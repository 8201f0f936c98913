package render

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/matzehuels/capview/pkg/errors"
)

// EnvConverter names an rsvg-convert binary to use instead of the one on
// PATH.
const EnvConverter = "CAPVIEW_RSVG_CONVERT"

const installHint = "pdf output needs rsvg-convert from librsvg (brew install librsvg, apt install librsvg2-bin)"

func converter() string {
	if bin := os.Getenv(EnvConverter); bin != "" {
		return bin
	}
	return "rsvg-convert"
}

// Available reports whether the converter can be found.
func Available() bool {
	_, err := exec.LookPath(converter())
	return err == nil
}

// ToPDF converts an SVG document to PDF. It fails with UNSUPPORTED when no
// converter is installed.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	bin, err := exec.LookPath(converter())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, installHint)
	}

	var out bytes.Buffer
	var stderr strings.Builder
	cmd := exec.CommandContext(ctx, bin, "--format=pdf")
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", strings.TrimSpace(stderr.String()))
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		return nil, errors.New(errors.ErrCodeInternal, "%s produced no pdf", bin)
	}
	return out.Bytes(), nil
}
