package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/match-league/internal/catalog"
	"github.com/vovakirdan/match-league/internal/config"
	"github.com/vovakirdan/match-league/internal/platform/tui"
	"github.com/vovakirdan/match-league/internal/server"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host sessions over SSH and serve the HTTP API",
	Long: `Start an SSH server that lets users connect and play, and an HTTP API
serving the catalog, result submission and the ranking board.

Each SSH connection gets its own independent session. The SSH user name is
the player name. All sessions share the results database.

HTTP endpoints:
  GET  /api/catalog          - Default catalog batch
  GET  /api/catalog/{id}     - Catalog batch by ID
  POST /api/results          - Save a result (form encoded)
  GET  /api/ranking?top=N    - Ranking board
  GET  /api/stats?player=P   - Player statistics

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key under the XDG data directory

Examples:
  matchleague serve                      # SSH on :23234, HTTP on :8080
  matchleague serve --ssh :2222          # Listen on port 2222
  matchleague serve --http ""            # SSH only
  matchleague serve --host-key ./key     # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address, empty string disables it (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Catalog source: builtin, a YAML file or an http(s) endpoint")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger("matchleague-serve")

	cfg, err := loadConfig(logger)
	if err != nil {
		return errConfig(err)
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Server.SSHAddress = flagSSHAddr
	}
	if flags.Changed("http") {
		cfg.Server.HTTPAddress = flagHTTPAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}
	if flagCatalog != "" {
		cfg.Catalog.Source = flagCatalog
	}

	ctx := cmd.Context()

	setup, err := buildSetup(ctx, cfg, cfg.Catalog.Source, cfg.Catalog.BatchID, logger)
	if err != nil {
		return errConfig(err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sshCfg := sshServerConfig(cfg, flagFPS)
	var scores tui.HighScorer
	if store != nil {
		scores = store
	}
	sshServer, err := tui.NewSSHServer(sshCfg, setup, buildSubmitter(store, cfg), scores, logger)
	if err != nil {
		return fmt.Errorf("error creating SSH server: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sshServer.ListenAndServe(gCtx)
	})

	if cfg.Server.HTTPAddress != "" {
		provider, err := catalog.Open(cfg.Catalog.Source, catalog.Options{Timeout: cfg.Catalog.Timeout})
		if err != nil {
			logger.Warn("serving the built-in catalog", "source", cfg.Catalog.Source, "error", err)
			provider = catalog.Builtin{}
		}

		var api *server.API
		if store != nil {
			api = server.New(store, provider, logger)
		} else {
			api = server.New(nil, provider, logger)
		}
		g.Go(func() error {
			return api.ListenAndServe(gCtx, cfg.Server.HTTPAddress)
		})
	}

	logger.Info("press Ctrl+C to stop", "ssh", sshServer.Addr(), "http", cfg.Server.HTTPAddress)
	return g.Wait()
}

// sshServerConfig starts from the SSH server defaults and applies every
// value the configuration sets.
func sshServerConfig(cfg config.GameConfig, fps int) tui.SSHServerConfig {
	sshCfg := tui.DefaultSSHServerConfig()
	if cfg.Server.SSHAddress != "" {
		sshCfg.Address = cfg.Server.SSHAddress
	}
	sshCfg.HostKeyPath = cfg.Server.HostKeyPath
	if cfg.Server.IdleTimeout > 0 {
		sshCfg.IdleTimeout = cfg.Server.IdleTimeout
	}
	if cfg.Results.Timeout > 0 {
		sshCfg.ResultTimeout = cfg.Results.Timeout
	}
	if fps > 0 {
		sshCfg.FPS = fps
	}
	return sshCfg
}
