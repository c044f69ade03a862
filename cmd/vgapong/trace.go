package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vga-pong/internal/storage"
)

var (
	flagTraceHold string
	flagTraceSkip int
)

var traceCmd = &cobra.Command{
	Use:   "trace <ticks>",
	Short: "Print the first system ticks",
	Long: `Clock the design for the given number of system ticks and print, for each
tick, the input lines, the committed registers and, on pixel ticks, the
sampled video pins.

Examples:
  vgapong trace 40
  vgapong trace 400 --hold up
  vgapong trace 10 --skip 1680000`,
	Args: cobra.ExactArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagTraceHold, "hold", "none", "Input held during the trace: up, down, none")
	traceCmd.Flags().IntVar(&flagTraceSkip, "skip", 0, "Run this many ticks silently first")
}

func runTrace(cmd *cobra.Command, args []string) {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fail("tick count must be a non-negative integer, got %q", args[0])
	}
	in, ok := holdInputs(flagTraceHold)
	if !ok {
		fail("unknown --hold value %q (want up, down or none)", flagTraceHold)
	}

	cfg := loadConfig()
	logger := newLogger(cfg, "vgapong")
	m := newMachine(cfg)
	started := time.Now()

	m.Run(flagTraceSkip, in, nil)

	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(w, "%10s  %-8s  %-62s  %s\n", "tick", "inputs", "registers", "video")
	for i := 0; i < n; i++ {
		out, ok := m.Tick(in)
		video := "-"
		if ok {
			video = out.String()
		}
		fmt.Fprintf(w, "%10d  %-8s  %-62s  %s\n", m.Stats().SystemTicks, in, m.Design().Snapshot(), video)
	}
	if err := w.Flush(); err != nil {
		fail("%v", err)
	}

	store := openStore(cfg, logger)
	saveRun(store, logger, storage.NewRun(m.Design().ID(), "trace", m.Stats(), time.Since(started)))
	if store != nil {
		store.Close()
	}
}
