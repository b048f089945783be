package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-obby/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels in play order",
	Long: `Shows every level file in play order with its size and pickups.
Files that fail to parse are listed with the error.

Examples:
  obby levels
  obby levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	loader := levels.NewLoader(flagLevels)
	ids, err := loader.ListIDs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := flagLevels
	if source == "" {
		source = "built-in"
	}
	if len(ids) == 0 {
		fmt.Printf("No levels found in %s.\n", source)
		return
	}

	fmt.Printf("Levels (%s):\n\n", source)

	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Printf("  %-3s  %-*s  %-7s  %-5s  %-6s  %s\n", "#", maxIDLen, "ID", "Size", "Coins", "Clouds", "Name")
	fmt.Printf("  %-3s  %-*s  %-7s  %-5s  %-6s  %s\n", "-", maxIDLen, "--", "----", "-----", "------", "----")

	for i, id := range ids {
		lvl, err := loader.LoadByID(id)
		if err != nil {
			fmt.Printf("  %-3d  %-*s  error: %v\n", i+1, maxIDLen, id, err)
			continue
		}
		coins, clouds := countPickups(lvl)
		size := fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height())
		fmt.Printf("  %-3d  %-*s  %-7s  %-5d  %-6d  %s\n", i+1, maxIDLen, id, size, coins, clouds, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'obby play' to start from the first level.")
}

func countPickups(lvl *levels.Level) (coins, clouds int) {
	for y := range lvl.Height() {
		for x := range lvl.Width() {
			t := lvl.Tile(x, y)
			if t.Coin {
				coins++
			}
			if t.Cloud {
				clouds++
			}
		}
	}
	return coins, clouds
}
