package router

import (
	"github.com/vovakirdan/clickwheel/internal/config"
	"github.com/vovakirdan/clickwheel/internal/registry"
)

// View is everything a renderer needs to draw the current screen.
type View struct {
	State   State
	Title   string
	Items   []string
	Index   int
	Marked  int    // Entry shown as checked, -1 for none
	Preview string // Main menu only
	Info    string // Open placeholder screen, empty when none
	Status  string
	Theme   string
	Game    registry.Game
}

// View returns the current screen contents.
func (r *Router) View() View {
	v := View{
		State:  r.state,
		Title:  r.state.title(),
		Index:  r.sel.Index(),
		Marked: -1,
		Info:   r.info,
		Status: r.status,
		Theme:  r.theme,
		Game:   r.game,
	}

	switch r.state {
	case StateMainMenu:
		v.Items = labels(r.cfg.Menus.Main)
		v.Preview = r.preview
	case StateSettings:
		v.Items = labels(r.cfg.Menus.Settings)
	case StateThemeSelect:
		v.Items = append([]string(nil), r.cfg.Menus.Themes...)
		v.Marked = r.themeIndex()
	case StateGamesList:
		v.Items = make([]string, len(r.games))
		for i, g := range r.games {
			v.Items[i] = g.Title
		}
	case StateInGame:
		if r.game != nil {
			v.Title = r.game.Title()
		}
	}
	return v
}

func labels(entries []config.MenuEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

// ClearStatus drops the status line message.
func (r *Router) ClearStatus() {
	r.status = ""
}
