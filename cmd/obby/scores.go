package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-obby/internal/games/obby"
	"github.com/vovakirdan/tui-obby/internal/platform/tui"
	"github.com/vovakirdan/tui-obby/internal/registry"
	"github.com/vovakirdan/tui-obby/internal/storage"
)

var (
	flagScoresPractice bool
	flagScoresBrowse   bool
	flagScoresLimit    int
	flagScoresClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores and the most recent runs.

Examples:
  obby scores
  obby scores --practice
  obby scores --browse
  obby scores --practice --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPractice, "practice", false, "Show practice mode instead of the campaign")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries per table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all high scores of the selected mode")
}

func runScores(_ *cobra.Command, _ []string) {
	var mode registry.Info
	for _, m := range registry.List() {
		if m.Practice == flagScoresPractice {
			mode = m
			break
		}
	}
	if mode.ID == "" {
		fmt.Fprintln(os.Stderr, "Error: no such mode registered")
		os.Exit(1)
	}
	gameID, title := mode.ID, mode.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("High scores for %s cleared.\n", title)
		return
	}

	if flagScoresBrowse {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'obby play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs scored: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent Runs")
	fmt.Println()
	fmt.Printf("  %-12s  %-7s  %-8s  %-5s  %-6s  %-6s  %s\n", "Player", "Skin", "Score", "Level", "Deaths", "Time", "Date")
	fmt.Printf("  %-12s  %-7s  %-8s  %-5s  %-6s  %-6s  %s\n", "------", "----", "-----", "-----", "------", "----", "----")
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		skin := "?"
		if r.Skin >= 0 && r.Skin < len(obby.Skins) {
			skin = obby.Skins[r.Skin].Name
		}
		secs := int(r.Duration / time.Second)
		fmt.Printf("  %-12s  %-7s  %-8d  %-5d  %-6d  %02d:%02d   %s\n",
			player, skin, r.Score, r.Level+1, r.Deaths, secs/60, secs%60, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
