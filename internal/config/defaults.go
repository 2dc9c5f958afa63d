package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration. It matches the
// embedded defaults/invaders.yaml and is the last fallback of Load.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Canvas: CanvasConfig{
			Width:  1600,
			Height: 1000,
		},
		Player: PlayerConfig{
			Speed:            400,
			Width:            60,
			Height:           50,
			ShootCooldown:    0.3,
			InvulnerableTime: 2,
			BlinkInterval:    0.1,
			BottomOffset:     10,
		},
		Bullet: BulletConfig{
			Speed:  600,
			Width:  20,
			Height: 60,
		},
		Enemy: EnemyConfig{
			Width:            140,
			Height:           100,
			SpacingX:         160,
			SpacingY:         120,
			StartX:           30,
			StartY:           120,
			DropDistance:     30,
			BaseSpeed:        40,
			SpeedMultipliers: []float64{3.5, 5.0, 7.0, 9.5, 12.0},
			SpeedUp:          1.05,
			SideMargin:       10,
			BottomMargin:     30,
			ShootProbability: 0.15,
			AnimationPeriod:  0.5,
			Points: Points{
				Squid:   30,
				Crab:    20,
				Octopus: 10,
			},
		},
		Gameplay: GameplayConfig{
			Lives:     3,
			MaxLevel:  5,
			TickRate:  60,
			AutoShoot: false,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     -1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
