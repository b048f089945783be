package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/games/obby"
	"github.com/vovakirdan/tui-obby/internal/registry"
	"github.com/vovakirdan/tui-obby/internal/replay"
)

var flagReplayScreen bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded run",
	Long: `Step a recording made with 'obby play --record' without a terminal UI
and print how the run ended. The recording's difficulty, level directory
and config are used unless overridden by flags.

Examples:
  obby replay run.obr
  obby replay run.obr --screen
  obby replay run.obr --levels ./my-levels`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayScreen, "screen", false, "Print the final frame")
}

func runReplay(cmd *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	h := rec.Header

	flags := cmd.Flags()
	if !flags.Changed("difficulty") {
		obby.SetDifficultyPreset(h.Difficulty)
	}
	if !flags.Changed("levels") {
		obby.SetLevelsDir(h.LevelsDir)
	}
	if !flags.Changed("config") {
		obby.SetConfigPath(h.ConfigPath)
	}

	game, err := registry.Create(h.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if g, ok := game.(*obby.Game); ok {
		g.UseSkin(h.Skin)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// An interrupted replay still reports how far it got.
	res, err := replay.Play(ctx, rec, game)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replay - %s (recorded %s)\n\n", game.Title(), h.RecordedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  Ticks     %d of %d (%d fps)\n", res.Ticks, rec.Ticks(), h.TickRate)
	fmt.Printf("  Score     %d\n", res.State.Score)
	fmt.Printf("  Level     %d\n", res.State.Level+1)
	fmt.Printf("  Game over %v\n", res.State.GameOver)

	if g, ok := game.(*obby.Game); ok {
		sum := g.Summary()
		fmt.Printf("  Deaths    %d\n", sum.Deaths)
		fmt.Printf("  Skin      %s\n", obby.Skins[sum.Skin].Name)
	}

	if len(res.Events) > 0 {
		kinds := make([]core.EventKind, 0, len(res.Events))
		for k := range res.Events {
			kinds = append(kinds, k)
		}
		slices.Sort(kinds)
		fmt.Println()
		fmt.Println("  Events")
		for _, k := range kinds {
			fmt.Printf("    %-16s %d\n", k, res.Events[k])
		}
	}

	if flagReplayScreen {
		cfg := core.DefaultConfig()
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}
}
