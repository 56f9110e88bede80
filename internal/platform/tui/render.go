package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/clickwheel/internal/core"
)

// Palette maps semantic screen colors to terminal styles.
type Palette map[core.Color]lipgloss.Style

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

var palettes = map[string]Palette{
	"classic": {
		core.ColorDefault:     lipgloss.NewStyle(),
		core.ColorText:        fg("252"),
		core.ColorDim:         fg("245"),
		core.ColorHighlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("33")).Bold(true),
		core.ColorBackground:  fg("236"),
		core.ColorPaddle:      fg("15"),
		core.ColorBall:        fg("15"),
		core.ColorBrickHard:   fg("196"),
		core.ColorBrickMedium: fg("214"),
		core.ColorBrickSoft:   fg("226"),
		core.ColorWin:         fg("46").Bold(true),
		core.ColorWheel:       fg("250"),
		core.ColorWheelLabel:  fg("240").Bold(true),
		core.ColorWheelCenter: fg("255"),
	},
	"dark": {
		core.ColorDefault:     lipgloss.NewStyle(),
		core.ColorText:        fg("250"),
		core.ColorDim:         fg("240"),
		core.ColorHighlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("250")).Bold(true),
		core.ColorBackground:  fg("234"),
		core.ColorPaddle:      fg("252"),
		core.ColorBall:        fg("231"),
		core.ColorBrickHard:   fg("161"),
		core.ColorBrickMedium: fg("97"),
		core.ColorBrickSoft:   fg("61"),
		core.ColorWin:         fg("219").Bold(true),
		core.ColorWheel:       fg("238"),
		core.ColorWheelLabel:  fg("245").Bold(true),
		core.ColorWheelCenter: fg("236"),
	},
	"mint": {
		core.ColorDefault:     lipgloss.NewStyle(),
		core.ColorText:        fg("23"),
		core.ColorDim:         fg("66"),
		core.ColorHighlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("36")).Bold(true),
		core.ColorBackground:  fg("158"),
		core.ColorPaddle:      fg("29"),
		core.ColorBall:        fg("22"),
		core.ColorBrickHard:   fg("30"),
		core.ColorBrickMedium: fg("36"),
		core.ColorBrickSoft:   fg("79"),
		core.ColorWin:         fg("35").Bold(true),
		core.ColorWheel:       fg("121"),
		core.ColorWheelLabel:  fg("23").Bold(true),
		core.ColorWheelCenter: fg("194"),
	},
}

// DefaultTheme is used when a theme name has no palette.
const DefaultTheme = "classic"

// PaletteFor returns the palette for a theme, falling back to the default theme.
func PaletteFor(theme string) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[DefaultTheme]
}

// HasTheme reports whether a theme has a palette.
func HasTheme(theme string) bool {
	_, ok := palettes[theme]
	return ok
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
