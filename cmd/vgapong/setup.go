package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vga-pong/internal/config"
	"github.com/vovakirdan/vga-pong/internal/machine"
	"github.com/vovakirdan/vga-pong/internal/registry"
	"github.com/vovakirdan/vga-pong/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	return cfg
}

// newLogger creates the command logger.
func newLogger(cfg config.Config, prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
}

// newMachine creates the selected design in its power-on state and wraps it
// in a machine with the configured divider.
func newMachine(cfg config.Config) *machine.Machine {
	if !registry.Exists(flagDesign) {
		fmt.Fprintf(os.Stderr, "Error: unknown design %q\n", flagDesign)
		fmt.Fprintln(os.Stderr, "Run 'vgapong list' to see available designs.")
		os.Exit(1)
	}
	design, err := registry.Create(flagDesign)
	if err != nil {
		fail("creating design: %v", err)
	}
	return machine.New(design, cfg.NewDivider())
}

// openStore opens the run database. A failure is logged and the command
// continues without recording.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return nil
	}
	return store
}

// saveRun records a run when a store is open.
func saveRun(store *storage.Store, logger *log.Logger, run storage.Run) {
	if store == nil || run.SystemTicks == 0 {
		return
	}
	if id, err := store.SaveRun(run); err != nil {
		logger.Warn("could not save run", "error", err)
	} else {
		logger.Debug("run saved", "id", id)
	}
}
