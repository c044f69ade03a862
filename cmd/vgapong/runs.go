package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vga-pong/internal/platform/tui"
	"github.com/vovakirdan/vga-pong/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display the runs recorded by play, window, capture, trace and serve.

Examples:
  vgapong runs
  vgapong runs --plain --limit 5
  vgapong runs --clear`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text list instead of the interactive table")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of --design")
}

func runRuns(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(flagDesign); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared runs of %s.\n", flagDesign)

	case flagPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		printRuns(store)

	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRuns(store, width, height); err != nil {
			fail("%v", err)
		}
	}
}

// printRuns writes the latest runs of the selected design as text.
func printRuns(store *storage.Store) {
	runs, err := store.RunsForDesign(flagDesign, flagLimit)
	if err != nil {
		fail("%v", err)
	}
	stats, err := store.DesignStats(flagDesign)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Runs - %s (%d total, %d system ticks, %d frames)\n",
		flagDesign, stats.Runs, stats.SystemTicks, stats.Frames)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-5s  %-8s  %12s  %7s  %9s  %8s  %s\n", "ID", "Source", "Ticks", "Frames", "L/R hits", "Time", "Date")
	fmt.Printf("  %-5s  %-8s  %12s  %7s  %9s  %8s  %s\n", "--", "------", "-----", "------", "--------", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-8s  %12d  %7d  %9s  %8s  %s\n",
			r.ID, r.Source, r.SystemTicks, r.Frames,
			fmt.Sprintf("%d/%d", r.LeftHits, r.RightHits),
			r.Duration.Round(100*time.Millisecond),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
