package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty resolves a --difficulty flag value. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the configured values.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BallSpeedRatio *= 0.75
		cfg.Layout.PaddleWidthRatio = clampF(cfg.Layout.PaddleWidthRatio*1.25, 0.05, 0.6)
	case DifficultyHard:
		cfg.Physics.BallSpeedRatio *= 1.35
		cfg.Layout.PaddleWidthRatio = clampF(cfg.Layout.PaddleWidthRatio*0.75, 0.05, 0.6)
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
