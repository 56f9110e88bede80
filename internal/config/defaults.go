package config

import (
	_ "embed"
)

//go:embed defaults/clickwheel.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Wheel: WheelConfig{
			SectorDegrees:     45,
			PaddleSensitivity: 150,
			ReanchorDegrees:   45,
			InnerRatio:        0.35,
		},
		Breakout: DefaultBreakoutConfig(),
		Menus: MenusConfig{
			Main: []MenuEntry{
				{Label: "Music", Kind: KindInfo, Preview: "♫ Music"},
				{Label: "Photos", Kind: KindInfo, Preview: "▣ Photos"},
				{Label: "Games", Kind: KindSubmenu, Target: TargetGames, Preview: "◉ Games"},
				{Label: "Settings", Kind: KindSubmenu, Target: TargetSettings, Preview: "⚙ Settings"},
				{Label: "Website", Kind: KindLink, Target: "https://example.com", Preview: "↗ Website"},
				{Label: "Mail", Kind: KindLink, Target: "mailto:hello@example.com", Preview: "✉ Mail"},
			},
			Settings: []MenuEntry{
				{Label: "Theme", Kind: KindSubmenu, Target: TargetThemes},
				{Label: "About", Kind: KindInfo},
			},
			Themes: []string{"classic", "dark", "mint"},
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Layout: BreakoutLayout{
			PaddleWidthRatio:  0.25,
			PaddleHeightRatio: 0.03,
			PaddleBottomGap:   2,
			BallRadiusRatio:   0.02,
			AttachGap:         3,
			BrickRows:         3,
			BrickMaxColumns:   6,
			BrickHeightRatio:  0.05,
			BrickPaddingRatio: 0.01,
			SideMarginRatio:   0.05,
			TopOffsetRatio:    0.1,
		},
		Physics: BreakoutPhysics{
			BallSpeedRatio: 0.008, // 2.4 px per frame on a 300 px canvas
			BounceSpread:   0.7,   // ±63° from vertical
			KeyStepRatio:   0.04,
			MaxFrameMs:     50,
		},
		Win: BreakoutWin{
			DurationMs:     1000,
			LabelFadeStart: 0.7,
		},
	}
}
