package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/geom"
	"github.com/matzehuels/capview/pkg/pipeline"
	"github.com/matzehuels/capview/pkg/render/train"
	"github.com/matzehuels/capview/pkg/scale"
)

// demoPiece is one showcase drawing.
type demoPiece struct {
	name string
	r    canvas.Renderable
}

// demoCommand writes the component showcase: each building block on its own,
// then two trains, then the badge scale curve.
func (c *CLI) demoCommand() *cobra.Command {
	var dir, formats string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a showcase of every component",
		Long: `Write a showcase of every component: a single figure, a number badge, a
carriage, a four-carriage train and an eleven-carriage ramp from empty to
full. The badge scale curve is printed as a table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := parseFormats(formats)
			if fs == nil {
				fs = []string{pipeline.FormatSVG}
			}
			for _, f := range fs {
				if err := errors.ValidateFormat(f); err != nil {
					return err
				}
			}
			return runDemo(cmd.Context(), dir, fs)
		},
	}

	cmd.Flags().StringVarP(&dir, "output", "o", "demo", "output directory")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output format(s): svg (default), png, pdf, json")
	return cmd
}

func demoPieces() ([]demoPiece, error) {
	bounds := geom.Size{W: 660, H: 300}
	four, err := train.New([]float64{1.3, 0.2, 0.42, 0.9}, bounds)
	if err != nil {
		return nil, err
	}
	ramp, err := train.New(rampLoads(), bounds)
	if err != nil {
		return nil, err
	}

	return []demoPiece{
		{"manikin", train.NewManikin(geom.R(0, 0, 280, 660), canvas.DarkGray)},
		{"badge", train.NewBadge(geom.R(0, 0, 50, 50), "16")},
		{"carriage", train.NewCarriage(geom.R(0, 0, 88, 40), 1.0, train.Middle, train.WithNumber(1))},
		{"train", four},
		{"ramp", ramp},
	}, nil
}

func runDemo(ctx context.Context, dir string, formats []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	pieces, err := demoPieces()
	if err != nil {
		return err
	}
	var written []string
	for _, p := range pieces {
		for _, f := range formats {
			data, err := pipeline.Encode(ctx, p.r, f, pipeline.Options{})
			if err != nil {
				return fmt.Errorf("%s.%s: %w", p.name, f, err)
			}
			path := filepath.Join(dir, p.name+"."+f)
			if err := writeArtifact(path, data); err != nil {
				return err
			}
			written = append(written, path)
		}
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(written)))

	printSuccess("Demo written to %s", dir)
	for _, path := range written {
		printFile(path)
	}
	printNewline()
	fmt.Println(StyleTitle.Render("Badge scale"))
	fmt.Println(scaleTable())
	return nil
}

// scaleTable lists the badge-to-carriage ratio for carriage heights 10 to
// 100, next to the steeper curve first sketched for it.
func scaleTable() string {
	rows := make([][]string, 0, 10)
	for i := range 10 {
		h := float64(10 + i*10)
		rows = append(rows, []string{
			fmt.Sprintf("%.0f", h),
			fmt.Sprintf("%.3f", scale.ForHeight(h)),
			fmt.Sprintf("%.3f", 0.7-scale.Sigmoid(h, 0.4, 0.08, 50)),
		})
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Height", "Badge ratio", "Sketch").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
