// Package config provides YAML and TOML game configuration loading and
// difficulty presets for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains every tunable of the simulation. Distances are in
// canvas pixels, speeds in pixels per second and times in seconds.
type InvadersConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas" toml:"canvas"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Bullet   BulletConfig   `yaml:"bullet" toml:"bullet"`
	Enemy    EnemyConfig    `yaml:"enemy" toml:"enemy"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio" toml:"audio"`
}

// CanvasConfig defines the logical playfield.
type CanvasConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed            float64 `yaml:"speed" toml:"speed"`
	Width            float64 `yaml:"width" toml:"width"`
	Height           float64 `yaml:"height" toml:"height"`
	ShootCooldown    float64 `yaml:"shoot_cooldown" toml:"shoot_cooldown"`
	InvulnerableTime float64 `yaml:"invulnerable_time" toml:"invulnerable_time"`
	BlinkInterval    float64 `yaml:"blink_interval" toml:"blink_interval"`
	BottomOffset     float64 `yaml:"bottom_offset" toml:"bottom_offset"`
}

// BulletConfig defines projectiles for both sides.
type BulletConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// EnemyConfig defines enemies and the formation they move in.
type EnemyConfig struct {
	Width            float64   `yaml:"width" toml:"width"`
	Height           float64   `yaml:"height" toml:"height"`
	SpacingX         float64   `yaml:"spacing_x" toml:"spacing_x"`
	SpacingY         float64   `yaml:"spacing_y" toml:"spacing_y"`
	StartX           float64   `yaml:"start_x" toml:"start_x"`
	StartY           float64   `yaml:"start_y" toml:"start_y"`
	DropDistance     float64   `yaml:"drop_distance" toml:"drop_distance"`
	BaseSpeed        float64   `yaml:"base_speed" toml:"base_speed"`
	SpeedMultipliers []float64 `yaml:"speed_multipliers" toml:"speed_multipliers"`
	SpeedUp          float64   `yaml:"speed_up" toml:"speed_up"`     // applied after every drop
	SideMargin       float64   `yaml:"side_margin" toml:"side_margin"` // distance from the edge that triggers a flip
	BottomMargin     float64   `yaml:"bottom_margin" toml:"bottom_margin"`
	ShootProbability float64   `yaml:"shoot_probability" toml:"shoot_probability"`
	AnimationPeriod  float64   `yaml:"animation_period" toml:"animation_period"`
	Points           Points    `yaml:"points" toml:"points"`
}

// Points are the base scores per enemy type, before the level multiplier.
type Points struct {
	Squid   int `yaml:"squid" toml:"squid"`
	Crab    int `yaml:"crab" toml:"crab"`
	Octopus int `yaml:"octopus" toml:"octopus"`
}

// GameplayConfig defines lives and level progression.
type GameplayConfig struct {
	Lives     int  `yaml:"lives" toml:"lives"`
	MaxLevel  int  `yaml:"max_level" toml:"max_level"`
	TickRate  int  `yaml:"tick_rate" toml:"tick_rate"`
	AutoShoot bool `yaml:"auto_shoot" toml:"auto_shoot"`
}

// AudioConfig defines the synthesizer output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
	Volume     float64 `yaml:"volume" toml:"volume"` // base-2 gain offset, 0 is unchanged
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the simulation relies on being positive.
func (c InvadersConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"canvas.width", c.Canvas.Width > 0},
		{"canvas.height", c.Canvas.Height > 0},
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"player.speed", c.Player.Speed >= 0},
		{"player.shoot_cooldown", c.Player.ShootCooldown >= 0},
		{"bullet.speed", c.Bullet.Speed > 0},
		{"bullet.height", c.Bullet.Height > 0},
		{"enemy.width", c.Enemy.Width > 0},
		{"enemy.height", c.Enemy.Height > 0},
		{"enemy.speed_multipliers", len(c.Enemy.SpeedMultipliers) > 0},
		{"enemy.speed_up", c.Enemy.SpeedUp >= 1},
		{"gameplay.lives", c.Gameplay.Lives > 0},
		{"gameplay.max_level", c.Gameplay.MaxLevel > 0},
		{"gameplay.tick_rate", c.Gameplay.TickRate > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s: %w", chk.name, ErrInvalidConfig)
		}
	}
	return nil
}
