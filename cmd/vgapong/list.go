package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vga-pong/internal/registry"
	"github.com/vovakirdan/vga-pong/internal/vga"
)

var flagTiming bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available designs",
	Long:  `Shows every registered design and, with --timing, the video mode it drives.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagTiming, "timing", false, "Show the video timing")
}

func runList(cmd *cobra.Command, args []string) {
	designs := registry.List()

	if len(designs) == 0 {
		fmt.Println("No designs available.")
		return
	}

	fmt.Println("Available designs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range designs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, d := range designs {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Title)
	}

	if flagTiming {
		t := vga.VGA640x480
		fmt.Println()
		fmt.Println("Video timing:")
		fmt.Printf("  %s\n", t)
		fmt.Printf("  horizontal: %d active, %d front porch, %d sync, %d back porch\n",
			t.HActive, t.HFrontPorch, t.HSync, t.BackPorchH())
		fmt.Printf("  vertical:   %d active, %d front porch, %d sync, %d back porch\n",
			t.VActive, t.VFrontPorch, t.VSync, t.BackPorchV())
		fmt.Printf("  %d system ticks per pixel, %d system ticks per frame\n",
			vga.PixelDivide, vga.FrameSystemTicks)
	}

	fmt.Println()
	fmt.Println("Run 'vgapong play' to start the simulator.")
}
