package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/match-league/internal/core"
	"github.com/vovakirdan/match-league/internal/engine"
	"github.com/vovakirdan/match-league/internal/platform/tui"
	"github.com/vovakirdan/match-league/internal/results"
)

var (
	flagPlayer     string
	flagCatalog    string
	flagBatch      int64
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session in this terminal",
	Long: `Start a Match League session.

Controls:
  Tab/1/2/3       - Choose difficulty (before the game starts)
  Enter           - Start the game, then commit the selection as a match
  Arrows/WASD     - Move the cursor (mouse clicks jump to a cell)
  Space           - Select or deselect the image under the cursor
  Esc             - Clear the selection
  H/P             - Pause/resume
  R               - Restart (back to difficulty selection)
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Examples:
  matchleague play
  matchleague play --difficulty hard
  matchleague play --catalog ./catalog.yaml --batch 2
  matchleague play --catalog http://localhost:8080/api`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name reported with results (default: config, then login name)")
	playCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Catalog source: builtin, a YAML file or an http(s) endpoint")
	playCmd.Flags().Int64Var(&flagBatch, "batch", 0, "Catalog batch ID (0 = default batch)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty tier: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger("matchleague")

	cfg, err := loadConfig(logger)
	if err != nil {
		return errConfig(err)
	}

	source := cfg.Catalog.Source
	if flagCatalog != "" {
		source = flagCatalog
	}
	batch := cfg.Catalog.BatchID
	if cmd.Flags().Changed("batch") {
		batch = flagBatch
	}

	setup, err := buildSetup(cmd.Context(), cfg, source, batch, logger)
	if err != nil {
		return errConfig(err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
		Player:  playerName(cfg.Player),
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// The alternate screen owns stderr while the game runs.
	sessionLogger, closeLog := sessionLogger()
	defer closeLog()

	reporter := results.NewReporter(buildSubmitter(store, cfg), sessionLogger, cfg.Results.Timeout)
	defer reporter.Close()

	e, err := setup.NewEngine(rc, reporter.Report)
	if err != nil {
		return err
	}
	if flagDifficulty != "" && !e.SelectDifficulty(engine.Tier(flagDifficulty)) {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	opts := tui.Options{
		Engine:   e,
		Reporter: reporter,
		Config:   rc,
		Logger:   sessionLogger,
	}
	if store != nil {
		opts.Scores = store
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// playerName resolves the reported player name: flag, config, login name.
func playerName(configured string) string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if configured != "" {
		return configured
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// sessionLogger logs to a rotated file under the XDG state directory while
// the terminal is in use by the game.
func sessionLogger() (*log.Logger, func()) {
	path, err := xdg.StateFile("matchleague/play.log")
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "matchleague",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { out.Close() }
}
