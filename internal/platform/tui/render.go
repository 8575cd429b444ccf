package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/desert-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSand:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorDust:    lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorRoad:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorCactus:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorBooster: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorVehicle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
