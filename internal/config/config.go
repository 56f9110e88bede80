// Package config provides YAML-based configuration loading for the
// click-wheel player: wheel tuning, Breakout geometry and the menu tree.
package config

import "fmt"

// Config is the complete player configuration.
type Config struct {
	Wheel    WheelConfig    `yaml:"wheel"`
	Breakout BreakoutConfig `yaml:"breakout"`
	Menus    MenusConfig    `yaml:"menus"`
}

// WheelConfig tunes the gesture decoder and the wheel geometry.
type WheelConfig struct {
	SectorDegrees     float64 `yaml:"sector_degrees"`     // Menu step granularity
	PaddleSensitivity float64 `yaml:"paddle_sensitivity"` // Paddle px per radian
	ReanchorDegrees   float64 `yaml:"reanchor_degrees"`   // Paddle re-anchor swing
	InnerRatio        float64 `yaml:"inner_ratio"`        // Centre button radius / wheel radius
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Layout  BreakoutLayout  `yaml:"layout"`
	Physics BreakoutPhysics `yaml:"physics"`
	Win     BreakoutWin     `yaml:"win"`
}

// BreakoutLayout sizes every object as a fraction of the canvas, which keeps
// the game resolution independent.
type BreakoutLayout struct {
	PaddleWidthRatio  float64 `yaml:"paddle_width_ratio"`  // of canvas width
	PaddleHeightRatio float64 `yaml:"paddle_height_ratio"` // of canvas height
	PaddleBottomGap   float64 `yaml:"paddle_bottom_gap"`   // px between paddle and bottom edge
	BallRadiusRatio   float64 `yaml:"ball_radius_ratio"`   // of canvas width
	AttachGap         float64 `yaml:"attach_gap"`          // px between attached ball and paddle
	BrickRows         int     `yaml:"brick_rows"`
	BrickMaxColumns   int     `yaml:"brick_max_columns"`
	BrickHeightRatio  float64 `yaml:"brick_height_ratio"`  // of canvas height
	BrickPaddingRatio float64 `yaml:"brick_padding_ratio"` // of canvas width
	SideMarginRatio   float64 `yaml:"side_margin_ratio"`   // of canvas width
	TopOffsetRatio    float64 `yaml:"top_offset_ratio"`    // of canvas height
}

// BreakoutPhysics defines ball and paddle motion.
type BreakoutPhysics struct {
	BallSpeedRatio float64 `yaml:"ball_speed_ratio"` // px per 60 Hz frame, of canvas width
	BounceSpread   float64 `yaml:"bounce_spread"`    // paddle bounce range as a fraction of π
	KeyStepRatio   float64 `yaml:"key_step_ratio"`   // keyboard paddle step, of canvas width
	MaxFrameMs     float64 `yaml:"max_frame_ms"`     // longest frame simulated in one step
}

// BreakoutWin defines the win overlay animation.
type BreakoutWin struct {
	DurationMs     float64 `yaml:"duration_ms"`
	LabelFadeStart float64 `yaml:"label_fade_start"` // progress at which the restart label appears
}

// MenusConfig is the menu tree shown on the player screen.
type MenusConfig struct {
	Main     []MenuEntry `yaml:"main"`
	Settings []MenuEntry `yaml:"settings"`
	Themes   []string    `yaml:"themes"`
}

// Menu entry kinds.
const (
	KindSubmenu = "submenu" // Target names another list: games, settings, themes
	KindLink    = "link"    // Target is a URL handed to the link dispatcher
	KindInfo    = "info"    // Opens a placeholder screen
)

// Submenu targets.
const (
	TargetGames    = "games"
	TargetSettings = "settings"
	TargetThemes   = "themes"
)

// MenuEntry is one selectable row.
type MenuEntry struct {
	Label   string `yaml:"label"`
	Kind    string `yaml:"kind"`
	Target  string `yaml:"target,omitempty"`
	Preview string `yaml:"preview,omitempty"`
}

// Validate checks the values the engine divides by or iterates over.
func (c Config) Validate() error {
	if c.Wheel.SectorDegrees <= 0 || c.Wheel.SectorDegrees > 180 {
		return fmt.Errorf("config: wheel.sector_degrees must be in (0, 180], got %v", c.Wheel.SectorDegrees)
	}
	if c.Wheel.InnerRatio <= 0 || c.Wheel.InnerRatio >= 1 {
		return fmt.Errorf("config: wheel.inner_ratio must be in (0, 1), got %v", c.Wheel.InnerRatio)
	}
	l := c.Breakout.Layout
	if l.BrickRows < 0 || l.BrickMaxColumns < l.BrickRows {
		return fmt.Errorf("config: breakout needs brick_max_columns >= brick_rows >= 0, got %d/%d", l.BrickMaxColumns, l.BrickRows)
	}
	if l.PaddleWidthRatio <= 0 || l.PaddleWidthRatio >= 1 {
		return fmt.Errorf("config: breakout.layout.paddle_width_ratio must be in (0, 1), got %v", l.PaddleWidthRatio)
	}
	if c.Breakout.Physics.BallSpeedRatio <= 0 {
		return fmt.Errorf("config: breakout.physics.ball_speed_ratio must be positive, got %v", c.Breakout.Physics.BallSpeedRatio)
	}
	if c.Breakout.Win.DurationMs <= 0 {
		return fmt.Errorf("config: breakout.win.duration_ms must be positive, got %v", c.Breakout.Win.DurationMs)
	}
	if len(c.Menus.Themes) == 0 {
		return fmt.Errorf("config: menus.themes must list at least one theme")
	}
	for _, e := range c.Menus.Main {
		if err := e.validate(); err != nil {
			return err
		}
	}
	for _, e := range c.Menus.Settings {
		if err := e.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e MenuEntry) validate() error {
	switch e.Kind {
	case KindInfo:
		return nil
	case KindLink:
		if e.Target == "" {
			return fmt.Errorf("config: link entry %q has no target", e.Label)
		}
		return nil
	case KindSubmenu:
		switch e.Target {
		case TargetGames, TargetSettings, TargetThemes:
			return nil
		}
		return fmt.Errorf("config: submenu entry %q has unknown target %q", e.Label, e.Target)
	default:
		return fmt.Errorf("config: entry %q has unknown kind %q", e.Label, e.Kind)
	}
}
