package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/match-league/internal/engine"
	"github.com/vovakirdan/match-league/internal/platform/tui"
	"github.com/vovakirdan/match-league/internal/storage"
)

var (
	flagTop         int
	flagStatsPlayer string
	flagInteractive bool
	flagClear       bool
)

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the ranking board",
	Long: `Display the best completed games from the local results database,
ordered by score and then by time.

Examples:
  matchleague ranking
  matchleague ranking --top 25
  matchleague ranking --player ana
  matchleague ranking --tui`,
	Args: cobra.NoArgs,
	Run:  runRanking,
}

func init() {
	rankingCmd.Flags().IntVar(&flagTop, "top", storage.DefaultRankingSize, "Number of results to show")
	rankingCmd.Flags().StringVar(&flagStatsPlayer, "player", "", "Show statistics for one player instead")
	rankingCmd.Flags().BoolVar(&flagInteractive, "tui", false, "Browse the ranking in a scrollable table")
	rankingCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every saved result")
}

func runRanking(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearResults(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return

	case flagStatsPlayer != "":
		stats, err := store.Stats(ctx, flagStatsPlayer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Statistics - %s\n", stats.Player)
		fmt.Println()
		fmt.Printf("  Games played:  %d\n", stats.GamesPlayed)
		fmt.Printf("  Completed:     %d\n", stats.Completed)
		fmt.Printf("  Best score:    %d\n", stats.BestScore)
		fmt.Printf("  Total score:   %d\n", stats.TotalScore)
		return

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagTop, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	records, err := store.TopResults(ctx, flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Ranking")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No completed games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'matchleague play' and clear a board to enter the ranking!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %-8s  %s\n", "Rank", "Player", "Score", "Time", "Tier", "Date")
	fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %-8s  %s\n", "----", "------", "-----", "----", "----", "----")

	for i, r := range records {
		fmt.Printf("  %-4d  %-16s  %-7d  %-5s  %-8s  %s\n",
			i+1, r.Player, r.Score, engine.FormatElapsed(r.Elapsed), r.Tier,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}
