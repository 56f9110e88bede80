// clickwheel is a click-wheel media player for the terminal, with a Breakout
// game driven by the wheel.
//
// Usage:
//
//	clickwheel                   - Start the player (same as run)
//	clickwheel run               - Start the player
//	clickwheel play <game>       - Start the player inside a game
//	clickwheel list              - List available games
//	clickwheel theme [name]      - Show or set the stored theme
//	clickwheel config            - Print the effective configuration
//	clickwheel serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Load configuration from a YAML file
//	--db <path>           - Set database path (default: ~/.clickwheel/clickwheel.db)
//	--log-file <path>     - Log file for interactive commands
//	--log-level <level>   - debug, info, warn or error
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickwheel/internal/config"
	"github.com/vovakirdan/clickwheel/internal/games/breakout"
	_ "github.com/vovakirdan/clickwheel/internal/games/pong"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clickwheel",
	Short: "Clickwheel - a click-wheel media player in your terminal",
	Long: `Clickwheel draws a portable media player in the terminal. Drag around
the wheel with the mouse to scroll, click its buttons, or use the keyboard.
Games → Breakout starts a Breakout game whose paddle follows the wheel.

Examples:
  clickwheel
  clickwheel play breakout --difficulty easy
  clickwheel theme mint
  clickwheel serve --ssh :2222`,
	Run: runRun,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.clickwheel/clickwheel.db", "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.clickwheel/clickwheel.log", "Log file for interactive commands")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// expandPath resolves a leading ~ to the home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the process logger. Interactive commands log to the log
// file because the TUI owns the terminal; an unusable file discards logs.
func newLogger(toFile bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "clickwheel",
		Level:           level,
	}
	if !toFile || flagLogFile == "" {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}

	path := expandPath(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fail("cannot create log directory: %v", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fail("cannot open log file: %v", err)
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}

// loadConfig loads the configuration, applies --difficulty and hands the
// game settings to the registered games.
func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyBreakoutPreset(&cfg.Breakout, preset)

	breakout.SetConfig(cfg.Breakout)
	breakout.SetLogger(logger)
	return cfg
}
