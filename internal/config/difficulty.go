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
)

// Presets lists the accepted preset names in ascending difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value into a preset. The empty string selects
// normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts lives, enemy fire and formation speed for a preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemy.ShootProbability *= 0.6
		cfg.Enemy.BaseSpeed *= 0.75
		cfg.Player.InvulnerableTime *= 1.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemy.ShootProbability *= 1.5
		cfg.Enemy.BaseSpeed *= 1.25
	}
}
