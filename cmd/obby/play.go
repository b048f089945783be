package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-obby/internal/games/obby"
	"github.com/vovakirdan/tui-obby/internal/platform/tui"
	"github.com/vovakirdan/tui-obby/internal/replay"
	"github.com/vovakirdan/tui-obby/internal/sfx"
	"github.com/vovakirdan/tui-obby/internal/storage"
)

var (
	flagPractice bool
	flagSound    bool
	flagRecord   string
	flagSkin     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play obby",
	Long: `Start a local session: title screen, character select, then the run.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump (hold for a higher jump)
  P                - Pause (Esc while paused returns to the title)
  R                - Play again (on the result screen)
  Ctrl+S           - Save a screenshot to ~/.obby/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 reserve lives, an extra life every 50 coins, clouds last longer
  normal - 3 reserve lives, an extra life every 100 coins
  hard   - 1 reserve life, an extra life every 200 coins, clouds vanish quickly

Examples:
  obby play
  obby play --practice
  obby play --difficulty hard --skin ninja
  obby play --sound --record run.obr
  obby play --levels ./my-levels --config ./my-obby.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Start in practice mode (infinite lives)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the input of each run to this file")
	playCmd.Flags().StringVar(&flagSkin, "skin", "", "Preselect a character by name")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagSkin != "" {
		idx := skinIndex(flagSkin)
		if idx < 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown skin %q\n", flagSkin)
			os.Exit(1)
		}
		obby.SetSkin(idx)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound *sfx.Player
	if flagSound {
		sound, err = sfx.NewPlayer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			sound = nil
		}
	}

	initial, repeat := holdDurations()
	opts := tui.SessionOptions{
		Store:      store,
		Sound:      sound,
		Logger:     logger,
		Username:   os.Getenv("USER"),
		Practice:   flagPractice,
		RecordPath: flagRecord,
		ReplayHeader: replay.Header{
			Difficulty: flagDifficulty,
			LevelsDir:  flagLevels,
			ConfigPath: flagConfig,
		},
		HoldInitial: initial,
		HoldRepeat:  repeat,
	}

	runErr := tui.Run(runtimeConfig(), opts)

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// skinIndex finds a skin by case-insensitive name, or returns -1.
func skinIndex(name string) int {
	for i, s := range obby.Skins {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}
