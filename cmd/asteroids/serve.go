package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server; every connection gets its own game.

Players connect with:
  ssh -p 23234 localhost

Examples:
  asteroids serve
  asteroids serve --ssh :2222
  asteroids serve --ssh 0.0.0.0:23234 --host-key /path/to/key`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Close sessions idle for this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := opts.Logger(os.Stderr, "asteroids-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKeyPath
	srvCfg.IdleTimeout = flagIdleTimeout
	srvCfg.TickRate = opts.FPS

	srv, err := tui.NewSSHServer(srvCfg, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}
