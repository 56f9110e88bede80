package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickwheel/internal/config"
	"github.com/vovakirdan/clickwheel/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the player's menus and games",
	Long: `Prints every screen reachable from the main menu, in wheel order.

The position column is the number of Forward clicks from the top of each list,
plus one. Game rows show the id accepted by 'clickwheel play'.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	rows := menuRows(loadConfig(logger), registry.List())

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))).
		Headers("#", "ENTRY", "KIND", "TARGET").
		Rows(rows...)
	fmt.Println(t)
	fmt.Println("Run 'clickwheel play <id>' to start inside a game.")
}

// menuRows flattens the menu tree depth first. Submenus are expanded under
// their entry: games from the registry, settings from the config, themes
// from the theme list.
func menuRows(cfg config.Config, games []registry.GameInfo) [][]string {
	var rows [][]string
	var walk func(prefix string, depth int, entries []config.MenuEntry)

	expand := func(prefix string, depth int, target string) {
		switch target {
		case config.TargetGames:
			for i, g := range games {
				rows = append(rows, row(prefix, i, depth, g.Title, "game", g.ID))
			}
		case config.TargetThemes:
			for i, name := range cfg.Menus.Themes {
				rows = append(rows, row(prefix, i, depth, name, "theme", ""))
			}
		case config.TargetSettings:
			walk(prefix, depth, cfg.Menus.Settings)
		}
	}

	walk = func(prefix string, depth int, entries []config.MenuEntry) {
		for i, e := range entries {
			r := row(prefix, i, depth, e.Label, e.Kind, e.Target)
			rows = append(rows, r)
			if e.Kind == config.KindSubmenu {
				expand(r[0]+".", depth+1, e.Target)
			}
		}
	}

	walk("", 0, cfg.Menus.Main)
	return rows
}

func row(prefix string, i, depth int, label, kind, target string) []string {
	return []string{fmt.Sprintf("%s%d", prefix, i+1), strings.Repeat("  ", depth) + label, kind, target}
}
