// matchleague is a terminal tile-matching puzzle: clear the board by selecting
// groups of four or more identical images, chaining quick matches for a combo.
//
// Usage:
//
//	matchleague play          - Play in the terminal
//	matchleague serve         - Host sessions over SSH plus the HTTP API
//	matchleague ranking       - Show the ranking board
//	matchleague presets       - List difficulty presets and the config in use
//
// Global flags:
//
//	--fps <rate>      - Animation frame rate (default: 30)
//	--seed <value>    - RNG seed for reproducible boards
//	--db <path>       - Results database (default: ~/.matchleague/results.db)
//	--config <path>   - Game config YAML
//	--debug           - Verbose logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matchleague",
	Short: "Match League - a tile-matching puzzle for your terminal",
	Long: `Match League fills a board with images. Select four or more of the
same image and commit them as a match to clear them. Bigger matches score
more, and matches made within five seconds of each other build a combo.

Available commands:
  play     - Play a session in this terminal
  serve    - Host sessions over SSH and serve the HTTP API
  ranking  - View the ranking board
  presets  - List difficulty presets

Examples:
  matchleague play
  matchleague play --player ana --catalog ./catalog.yaml
  matchleague serve --ssh :2222 --http :8080
  matchleague ranking --top 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Animation frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.matchleague/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(presetsCmd)
}

// newLogger returns the command-line logger.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
