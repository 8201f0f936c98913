package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/capview/pkg/load"
)

var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleNumber    = StyleHighlight
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	styleOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleSpinner = StyleHighlight
)

// swatch paints a block in the badge color of load v, so terminal output
// matches the rendered diagram.
func swatch(v float64, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(load.Color(v).Hex())).
		Render(strings.Repeat(" ", width))
}

func printSuccess(format string, args ...any) {
	fmt.Println(styleOK.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleMuted.Render("›") + " " + fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printNewline() { fmt.Println() }

// printStats summarizes a render on one line, e.g.
// "4 carriages · 660×300 · peak ██ 1.30 full · cached".
func printStats(loads []float64, width, height float64, cached bool) {
	sep := StyleDim.Render(" · ")
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d carriages", len(loads))),
		StyleDim.Render(fmt.Sprintf("%.0f×%.0f", width, height)),
	}
	if len(loads) > 0 {
		peak := slices.Max(loads)
		parts = append(parts, StyleDim.Render("peak ")+swatch(peak, 2)+StyleDim.Render(fmt.Sprintf(" %.2f %s", peak, load.Classify(peak))))
	}
	if cached {
		parts = append(parts, styleOK.Render("cached"))
	} else {
		parts = append(parts, styleMuted.Render("fresh"))
	}
	fmt.Println("  " + strings.Join(parts, sep))
}
