package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickwheel/internal/storage"
)

var flagThemeUser string

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the stored theme",
	Long: `Without an argument, prints the theme the player starts with.
With a name, stores it for the next start. SSH users have their own
preference, keyed by their SSH user name.

Examples:
  clickwheel theme
  clickwheel theme dark
  clickwheel theme mint --user alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTheme,
}

func init() {
	themeCmd.Flags().StringVar(&flagThemeUser, "user", storage.LocalUser, "Preference owner")
}

func runTheme(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()
	cfg := loadConfig(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening preferences database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		theme, err := store.Theme(flagThemeUser)
		if err != nil {
			fail("reading theme: %v", err)
		}
		if theme == "" {
			theme = cfg.Menus.Themes[0] + " (default)"
		}
		fmt.Println(theme)
		return
	}

	name := args[0]
	if !slices.Contains(cfg.Menus.Themes, name) {
		fail("unknown theme %q (available: %s)", name, strings.Join(cfg.Menus.Themes, ", "))
	}
	if err := store.SetTheme(flagThemeUser, name); err != nil {
		fail("saving theme: %v", err)
	}
	fmt.Printf("Theme set to %s\n", name)
}
