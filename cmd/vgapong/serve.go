package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vga-pong/internal/platform/tui"
	"github.com/vovakirdan/vga-pong/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that gives every connection its own machine.

Each session starts from power-on and runs independently. When a session
quits, its run is recorded in the shared run database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.vgapong/host_key

Examples:
  vgapong serve                           # Listen on the configured address
  vgapong serve --ssh :2222               # Listen on port 2222
  vgapong serve --host-key ./my_host_key  # Use specific host key
  vgapong serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}
	if !registry.Exists(flagDesign) {
		fail("unknown design %q", flagDesign)
	}

	srvCfg := tui.SSHServerConfigFrom(cfg)
	srvCfg.DesignID = flagDesign
	srvCfg.Logger = newLogger(cfg, "vgapong-ssh")

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting VGA Pong SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fail("server: %v", err)
	}
}
