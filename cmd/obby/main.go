// obby is a terminal platformer: run, jump and collect coins on your way
// to the goal of every level.
//
// Usage:
//
//	obby play [--practice]   - Play locally
//	obby levels              - List the levels in play order
//	obby scores              - Show high scores and recent runs
//	obby serve               - Start SSH server for remote play
//	obby replay <file>       - Play a recording back headlessly
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.obby/scores.db)
//	--levels <dir>      - Read levels from a directory instead of the built-in set
//	--config <path>     - Custom obby config YAML
//	--difficulty <p>    - Difficulty preset: easy, normal, hard
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-obby/internal/config"
	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/games/obby"
	"github.com/vovakirdan/tui-obby/internal/telemetry"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLevels     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

var (
	logger            = log.New(io.Discard)
	telemetryShutdown func(context.Context) error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "obby",
	Short: "Obby - a platformer in your terminal",
	Long: `Obby is a tile-based platformer for the terminal. Run and jump past
spikes and vanishing clouds, grab coins and reach the goal of every level.

Available commands:
  play     - Play locally
  levels   - List levels in play order
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play
  replay   - Play back a recorded run

Examples:
  obby play
  obby play --practice --difficulty easy
  obby levels --levels ./my-levels
  obby serve --ssh :23235
  obby replay run.obr`,
	PersistentPreRun:  setup,
	PersistentPostRun: teardown,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.obby/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom obby config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup loads .env, starts telemetry and applies the global flags to the game.
func setup(cmd *cobra.Command, _ []string) {
	// Not fatal: variables may be set directly.
	envErr := godotenv.Load()

	logger = newLogger(cmd)
	if envErr != nil && !os.IsNotExist(envErr) {
		logger.Warn(".env not loaded", "err", envErr)
	}

	if telemetry.Configured() {
		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			logger.Warn("telemetry setup failed, running without tracing", "err", err)
		} else {
			telemetryShutdown = shutdown
		}
	}

	obby.SetLogger(logger)
	obby.SetConfigPath(flagConfig)
	obby.SetDifficultyPreset(flagDifficulty)
	obby.SetLevelsDir(flagLevels)
}

func teardown(*cobra.Command, []string) {
	if telemetryShutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := telemetryShutdown(ctx); err != nil {
		logger.Warn("telemetry shutdown failed", "err", err)
	}
}

// newLogger builds the command's logger. Interactive play owns the
// terminal, so it logs to ~/.obby/obby.log instead of stderr.
func newLogger(cmd *cobra.Command) *log.Logger {
	var w io.Writer = os.Stderr
	if cmd == playCmd {
		w = io.Discard
		if f, err := openLogFile(); err == nil {
			w = f
		}
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "obby",
	})
	if flagVerbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".obby")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "obby.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// holdDurations reads the key-release emulation timings from the config.
func holdDurations() (initial, repeat time.Duration) {
	cfg, err := config.LoadObby(flagConfig)
	if err != nil {
		logger.Warn("config load failed, using default key timings", "err", err)
		cfg = config.DefaultObbyConfig()
	}
	return time.Duration(cfg.Input.HoldInitialMS) * time.Millisecond,
		time.Duration(cfg.Input.HoldRepeatMS) * time.Millisecond
}
