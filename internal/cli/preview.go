package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/load"
)

const loadStep = 0.1

var (
	previewHelpStyle     = lipgloss.NewStyle().Foreground(colorDim)
	previewCarriageStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray).
				Padding(0, 1).
				Width(9).
				Align(lipgloss.Center)
	previewSelectedStyle = previewCarriageStyle.BorderForeground(colorAccent).Bold(true)
)

// previewCommand starts the interactive train editor.
func (c *CLI) previewCommand() *cobra.Command {
	var loads string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Edit a train's loads interactively in the terminal",
		Long: `Edit a train's loads interactively in the terminal.

Keys: ←/→ select a carriage, ↑/↓ change its load by 0.1, a add a carriage,
d delete it, q quit. The final loads are printed on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := []float64{1.3, 0.2, 0.42, 0.9}
			if loads != "" {
				var err error
				if values, err = errors.ParseLoads(loads); err != nil {
					return err
				}
			}

			final, err := tea.NewProgram(NewPreviewModel(values), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			m := final.(PreviewModel)
			printInfo("loads %s", StyleHighlight.Render(FormatLoads(m.Loads)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&loads, "loads", "l", "", "initial loads (default 1.3,0.2,0.42,0.9)")
	return cmd
}

// =============================================================================
// PreviewModel - Interactive train editor
// =============================================================================

// PreviewModel is the bubbletea model for the train editor.
type PreviewModel struct {
	Loads  []float64
	Cursor int
	Width  int
}

// NewPreviewModel creates an editor for a copy of loads.
func NewPreviewModel(loads []float64) PreviewModel {
	return PreviewModel{Loads: append([]float64(nil), loads...), Width: 80}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l":
			if m.Cursor < len(m.Loads)-1 {
				m.Cursor++
			}
		case "up", "k":
			m.Loads = m.withLoad(m.Loads[m.Cursor] + loadStep)
		case "down", "j":
			m.Loads = m.withLoad(max(m.Loads[m.Cursor]-loadStep, 0))
		case "a":
			if len(m.Loads) < errors.MaxCarriages {
				m.Loads = append(m.Loads[:m.Cursor+1:m.Cursor+1], append([]float64{m.Loads[m.Cursor]}, m.Loads[m.Cursor+1:]...)...)
				m.Cursor++
			}
		case "d", "backspace", "delete":
			if len(m.Loads) > 1 {
				m.Loads = append(m.Loads[:m.Cursor:m.Cursor], m.Loads[m.Cursor+1:]...)
				m.Cursor = min(m.Cursor, len(m.Loads)-1)
			}
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
	}
	return m, nil
}

// withLoad returns a copy of the loads with the selected one set to v,
// rounded to one decimal.
func (m PreviewModel) withLoad(v float64) []float64 {
	loads := append([]float64(nil), m.Loads...)
	loads[m.Cursor] = math.Round(v*10) / 10
	return loads
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Train Preview"))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←/→ select  ↑/↓ load  a add  d delete  q quit"))
	b.WriteString("\n\n")

	perRow := max(m.Width/13, 1)
	var row []string
	for i, v := range m.Loads {
		row = append(row, m.carriage(i, v))
		if len(row) == perRow || i == len(m.Loads)-1 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
			b.WriteString("\n")
			row = row[:0]
		}
	}

	v := m.Loads[m.Cursor]
	lvl := load.Classify(v)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  carriage %s  load %s  level %s",
		StyleNumber.Render(strconv.Itoa(m.Cursor+1)),
		StyleValue.Render(fmt.Sprintf("%.0f%%", v*100)),
		StyleValue.Render(fmt.Sprintf("%d (%s)", lvl, lvl))))
	b.WriteString("\n")
	return b.String()
}

// carriage renders one carriage box: a colored number badge over one dot
// per figure.
func (m PreviewModel) carriage(i int, v float64) string {
	color := lipgloss.Color(load.Color(v).Hex())
	fg := lipgloss.Color("0")
	if v > 0.8 {
		fg = lipgloss.Color("255")
	}
	badge := lipgloss.NewStyle().Background(color).Foreground(fg).Bold(true).Padding(0, 1).Render(strconv.Itoa(i + 1))
	figures := strings.Repeat("●", int(load.Classify(v)))
	if figures == "" {
		figures = StyleDim.Render("·")
	}

	style := previewCarriageStyle
	if i == m.Cursor {
		style = previewSelectedStyle
	}
	return style.Render(badge + "\n" + figures)
}

// FormatLoads joins loads with commas in the form accepted by --loads.
func FormatLoads(loads []float64) string {
	parts := make([]string, len(loads))
	for i, v := range loads {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
