package tui

import (
	"github.com/vovakirdan/clickwheel/internal/core"
	"github.com/vovakirdan/clickwheel/internal/router"
)

const (
	listTop         = 2  // Rows taken by the title bar
	minPreviewWidth = 30 // Narrower panes hide the preview panel
)

// DrawPane draws the screen pane for a router view.
func DrawPane(s *core.Screen, v router.View) {
	s.Clear()

	if v.State == router.StateInGame && v.Game != nil {
		w, h := v.Game.Size()
		v.Game.Render(core.NewRaster(s, w, h))
		return
	}

	s.DrawTextCentered(0, v.Title, core.ColorText)
	for x := range s.Width() {
		s.SetCell(x, 1, '─', core.ColorDim)
	}

	if v.Info != "" {
		mid := listTop + (s.Height()-listTop)/2
		s.DrawTextCentered(mid-1, "Opening "+v.Info+"…", core.ColorText)
		s.DrawTextCentered(mid+1, "MENU to go back", core.ColorDim)
		return
	}

	listW := s.Width()
	if v.Preview != "" && s.Width() >= minPreviewWidth {
		listW = s.Width() * 3 / 5
		drawPreview(s, listW, v.Preview)
	}
	drawList(s, listW, v)
}

func drawList(s *core.Screen, width int, v router.View) {
	visible := s.Height() - listTop
	if visible <= 0 {
		return
	}
	top := 0
	if v.Index >= visible {
		top = v.Index - visible + 1
	}

	for i := top; i < len(v.Items) && i-top < visible; i++ {
		y := listTop + i - top
		color := core.ColorText
		if i == v.Index {
			color = core.ColorHighlight
			for x := range width {
				s.SetCell(x, y, ' ', color)
			}
		}
		s.DrawText(1, y, clip(v.Items[i], width-3), color)
		if i == v.Marked {
			s.SetCell(width-2, y, '✓', color)
		}
	}

	if len(v.Items) == 0 {
		s.DrawText(1, listTop, "(empty)", core.ColorDim)
	}
}

func drawPreview(s *core.Screen, x int, text string) {
	for y := listTop; y < s.Height(); y++ {
		s.SetCell(x, y, '│', core.ColorDim)
	}
	w := s.Width() - x - 1
	text = clip(text, w)
	col := x + 1 + (w-len([]rune(text)))/2
	s.DrawText(col, listTop+(s.Height()-listTop)/2, text, core.ColorText)
}

// clip shortens text to n runes.
func clip(text string, n int) string {
	r := []rune(text)
	if n <= 0 {
		return ""
	}
	if len(r) > n {
		return string(r[:n])
	}
	return text
}
