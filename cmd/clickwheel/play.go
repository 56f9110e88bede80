package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/clickwheel/internal/platform/tui"
	"github.com/vovakirdan/clickwheel/internal/registry"
	"github.com/vovakirdan/clickwheel/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the click-wheel player",
	Long: `Start the player at the main menu.

Controls:
  Mouse drag on the ring  - Scroll / move the paddle
  Click ring / centre     - MENU, ▶▶|, ▶❚❚, |◀◀ / SELECT
  Esc                     - MENU (back, exit game)
  Enter/Space             - SELECT (open, launch, restart)
  Up/Down                 - Previous / next entry
  Left/Right              - Previous / next entry, paddle in a game
  P                       - Play/Pause
  Ctrl+S                  - Screenshot
  Q/Ctrl+C                - Quit`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Start the player inside a game",
	Long: `Start the player with the given game already running. MENU returns to
the Games list.

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Configured values
  hard   - Faster ball, narrower paddle
  fixed  - Configured values

Examples:
  clickwheel play breakout
  clickwheel play breakout --difficulty hard`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runRun(_ *cobra.Command, _ []string) {
	startPlayer("")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'clickwheel list' to see available games.", gameID)
	}
	startPlayer(gameID)
}

func startPlayer(gameID string) {
	logger, closeLog := newLogger(true)
	defer closeLog()
	cfg := loadConfig(logger)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open preferences database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	err = tui.Run(tui.Options{
		Config:   cfg,
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
		Store:    store,
		Game:     gameID,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("player exited", "error", err)
		closeLog()
		fail("%v", err)
	}
}
