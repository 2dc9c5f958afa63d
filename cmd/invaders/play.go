package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/session"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagMute      bool
	flagAutoShoot bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A, Right/D   - Move (or move the mouse)
  Space/J           - Fire (or hold the left mouse button)
  Enter             - Start / next level
  P                 - Pause
  M                 - Mute
  T                 - Toggle auto-fire
  R                 - Restart (after game over)
  Esc/B             - Back to the title screen (paused or game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More lives, slower and calmer invaders
  normal - The arcade settings
  hard   - Fewer lives, faster invaders that shoot more

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.toml --mute`,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
		cmd.Flags().BoolVar(&flagAutoShoot, "auto-shoot", false, "Start with auto-fire on")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagAutoShoot {
		cfg.Gameplay.AutoShoot = true
	}

	// The game owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("invaders", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := session.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  max(height-2, 1),
			TickRate: cfg.Gameplay.TickRate,
			Seed:     flagSeed,
		},
		Logger: logger,
		Player: "local",
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		logger.Warn("running without storage", "err", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Records = store
		opts.Runs = store
	}

	if cfg.Audio.Enabled {
		synth := audio.NewSynth(cfg.Audio)
		if err := synth.Open(); err != nil {
			logger.Warn("running without sound", "err", err)
		} else {
			defer synth.Close()
			opts.Sound = synth
		}
	}

	sess := session.New(opts)
	if flagMute {
		sess.ToggleMute()
	}

	if err := tui.Run(sess, flagFPS); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
