package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tone-memory/internal/platform/tui"
	"github.com/vovakirdan/tone-memory/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so players can connect and play Tone Memory remotely.

Each connection gets its own game. Tones are not played over SSH. Finished
games are stored under the SSH user name and appear in "tonememory scores".

Examples:
  tonememory serve
  tonememory serve --ssh :2222
  tonememory serve --ssh 0.0.0.0:23235 --host-key /path/to/key

Connect with:
  ssh -p 23235 localhost`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (default from config, :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (default: ~/.tonememory/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("tonememory-ssh")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		logger.Warn("could not open results database, results will not be saved", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Settings = sceneSettings(cfg)
	serverCfg.Settings.ShowRevealedNotes = true
	serverCfg.TickRate = cfg.Timing.FPS
	serverCfg.IdleTimeout = flagIdleTimeout
	if cfg.Server.Addr != "" {
		serverCfg.Address = cfg.Server.Addr
	}
	if flagSSHAddr != "" {
		serverCfg.Address = flagSSHAddr
	}
	serverCfg.HostKeyPath = cfg.Server.HostKey
	if flagHostKey != "" {
		serverCfg.HostKeyPath = flagHostKey
	}

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating SSH server: %w", err)
	}

	fmt.Printf("Tone Memory SSH server listening on %s\n", server.Addr())
	fmt.Println("Connect with: ssh -p <port> <host>")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
