package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/load"
)

// levelsCommand prints how loads classify and color.
func (c *CLI) levelsCommand() *cobra.Command {
	var loads string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show the crowd level and badge color of each load",
		Long: `Show the crowd level and badge color of each load.

Without --loads, a ramp from 0.05 to 1.05 in steps of 0.1 is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := rampLoads()
			if loads != "" {
				var err error
				if values, err = errors.ParseLoads(loads); err != nil {
					return err
				}
			}
			fmt.Println(levelsTable(values))
			return nil
		},
	}

	cmd.Flags().StringVarP(&loads, "loads", "l", "", "carriage loads, e.g. 1.3,0.2,0.42")
	return cmd
}

// rampLoads returns eleven loads rising from 0.05 by 0.1.
func rampLoads() []float64 {
	loads := make([]float64, 11)
	for i := range loads {
		loads[i] = 0.05 + float64(i)*0.1
	}
	return loads
}

// levelsTable renders one row per load with a color swatch.
func levelsTable(loads []float64) string {
	rows := make([][]string, len(loads))
	for i, v := range loads {
		lvl := load.Classify(v)
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", v),
			fmt.Sprintf("%d %s", lvl, lvl),
			strings.Repeat("●", int(lvl)),
			fmt.Sprintf("%.0f°", load.Hue(v)*360),
			swatch(v, 4) + " " + load.Color(v).Hex(),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Load", "Level", "Figures", "Hue", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
