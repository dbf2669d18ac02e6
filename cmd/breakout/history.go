package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform/tui"
	"github.com/vovakirdan/breakout/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the most recent finished runs, newest first, with a summary
of every run recorded so far.

Examples:
  breakout history
  breakout history --limit 50
  breakout history -i
  breakout history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open run database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := terminalSize()
		return tui.RunHistory(store, width, height)
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}
	summary, err := store.Summary()
	if err != nil {
		return err
	}

	fmt.Print(tui.FormatRuns(runs, summary))

	best, err := store.BestRun()
	if err != nil {
		return err
	}
	if best != nil {
		fmt.Printf("\nBest: %d blocks in %s (run #%d)\n", best.BlocksDestroyed, best.Duration.Round(1e9), best.ID)
	}
	return nil
}
