package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/applegrid/internal/platform/tui"
	"github.com/vovakirdan/applegrid/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game; nothing is shared
between connections and nothing is kept after they close.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.applegrid/host_key

Flags override the ssh section of the config file.

Examples:
  applegrid serve                           # Listen on :23234 with auto-generated key
  applegrid serve --ssh :2222               # Listen on port 2222
  applegrid serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", defaultGameID, "Game every session plays")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig(cfg)
	srvCfg.GameID = flagServeGame
	srvCfg.Logger = newLogger("applegrid-ssh", cfg)
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	if !registry.Exists(srvCfg.GameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", srvCfg.GameID)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fatal(srvCfg.Logger, "create server", err)
	}

	fmt.Printf("Starting applegrid SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal(srvCfg.Logger, "server error", err)
	}
}
