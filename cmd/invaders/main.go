// invaders is a Space Invaders clone for the terminal.
//
// Usage:
//
//	invaders                 - Play (same as "invaders play")
//	invaders play            - Play in this terminal
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the best runs
//	invaders sim             - Run a headless autopilot game
//	invaders config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Frames per second sent to the terminal (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Records database (default: ~/.invaders/records.db)
//	--config <path>       - Custom YAML or TOML game config
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "TUI Invaders - Space Invaders in your terminal",
	Long: `TUI Invaders is the arcade classic rendered with terminal cells.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View the best and most recent runs
  sim      - Run a deterministic headless game
  config   - Print the default configuration

Examples:
  invaders
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders sim --seed 42 --ticks 20000`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.InvadersConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the logger for a command. With no --log-file, logs go to
// fallback, which may be io.Discard for full-screen commands. The returned
// closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		//nolint:errcheck // Best-effort close on exit
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
