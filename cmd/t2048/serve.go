package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant and size menu, and
its own best score. Recorded rounds go to the server's replay database.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve                           # Listen on :23234 with auto-generated key
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key
  t2048 serve --db ./replays.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	server := appConfig.Server
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		server.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		server.IdleTimeoutMinutes = flagIdleTimeout
	}

	cfg := tui.DefaultSSHServerConfig()
	if server.Address != "" {
		cfg.Address = server.Address
	}
	if server.IdleTimeoutMinutes > 0 {
		cfg.IdleTimeout = server.IdleTimeout()
	}
	cfg.HostKeyPath = server.HostKeyPath
	cfg.DBPath = appConfig.Storage.DBPath
	cfg.TickRate = appConfig.Timing.TickRate

	srv, err := tui.NewSSHServer(cfg, logger.WithPrefix("t2048-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting t2048 SSH server on %s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return srv.ListenAndServe()
}
