package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-game/internal/core"
)

// palette holds the terminal style of every core color.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorBlock:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorPreview:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	core.ColorHUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorOverlay:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
}

func styleOf(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the screen into styled terminal text. Each run of
// same-colored cells on a row is styled once.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	var run strings.Builder

	for y := range lines {
		var line strings.Builder
		x := 0
		for x < s.Width() {
			color := s.At(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.At(x, y).Color == color; x++ {
				run.WriteRune(s.At(x, y).Rune)
			}
			line.WriteString(styleOf(color).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
