package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/pipeline"
)

const defaultOutput = "train"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	loads   string  // comma-separated carriage loads
	output  string  // output file (single format) or base path
	formats string  // comma-separated output formats
	width   float64 // bounding width
	height  float64 // bounding height
	scale   float64 // PNG pixel density
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a train to SVG, PNG, PDF or JSON",
		Example: `  capview render --loads 1.3,0.2,0.42,0.9
  capview render --loads 0.1,0.5,0.9 -f svg,png -o out/rush-hour
  capview render --loads 0.6 --width 200 --height 90 -f pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			return c.runRender(cmd.Context(), opts, flags.Changed("width"), flags.Changed("height"), flags.Changed("scale"))
		},
	}

	cmd.Flags().StringVarP(&opts.loads, "loads", "l", "", "carriage loads, e.g. 1.3,0.2,0.42 (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (default \"train\")")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", pipeline.DefaultWidth, "maximum width")
	cmd.Flags().Float64Var(&opts.height, "height", pipeline.DefaultHeight, "maximum height")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG pixels per point")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	_ = cmd.MarkFlagRequired("loads")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts, setWidth, setHeight, setScale bool) error {
	logger := loggerFromContext(ctx)

	loads, err := errors.ParseLoads(opts.loads)
	if err != nil {
		return err
	}
	cfg, err := c.config()
	if err != nil {
		return err
	}
	popts, err := cfg.PipelineOptions(loads)
	if err != nil {
		return err
	}
	if setWidth {
		popts.Width = opts.width
	}
	if setHeight {
		popts.Height = opts.height
	}
	if setScale {
		popts.Scale = opts.scale
	}
	if setWidth || setHeight {
		if err := errors.ValidateBounds(popts.Width, popts.Height); err != nil {
			return err
		}
	}
	if f := parseFormats(opts.formats); f != nil {
		popts.Formats = f
	}
	popts.Formats = slices.Compact(popts.Formats)
	popts.Refresh = opts.refresh
	popts.Logger = logger
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Rendering...")
	spin.Start()
	res, err := runner.Execute(ctx, popts)
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d carriages", res.Stats.CarriageCount))

	paths := outputPaths(opts.output, popts.Formats)
	for _, format := range popts.Formats {
		if err := writeArtifact(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "path", paths[format], "bytes", len(res.Artifacts[format]))
	}

	printSuccess("Rendered train")
	printStats(popts.Loads, res.Train.Bounds().W, res.Train.Bounds().H, res.CacheInfo.RenderHit)
	for _, format := range popts.Formats {
		printFile(paths[format])
	}
	return nil
}

// outputPaths maps each format to a file path. A single format with an
// output that already has an extension is written as given. Otherwise a
// known format extension is stripped and every format gets base.format.
func outputPaths(output string, formats []string) map[string]string {
	if output == "" {
		output = defaultOutput
	}
	paths := make(map[string]string, len(formats))
	ext := filepath.Ext(output)
	if len(formats) == 1 && ext != "" {
		paths[formats[0]] = output
		return paths
	}

	base := output
	if errors.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		base = strings.TrimSuffix(output, ext)
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
