package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match-league/internal/catalog"
	"github.com/vovakirdan/match-league/internal/config"
	"github.com/vovakirdan/match-league/internal/engine"
)

var flagPrintDefaults bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows the difficulty presets and scoring rules from the active config,
where that config was loaded from, and where a user config can be placed.

Use --defaults to print the built-in config as a starting point:
  matchleague presets --defaults > ~/.config/matchleague/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagPrintDefaults, "defaults", false, "Print the built-in config YAML")
}

func runPresets(_ *cobra.Command, _ []string) {
	if flagPrintDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	presets, err := cfg.EnginePresets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in presets: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Calculate column widths
	maxTierLen := 4 // "Tier" header
	for _, p := range presets {
		if len(p.Tier) > maxTierLen {
			maxTierLen = len(p.Tier)
		}
	}

	fmt.Printf("  %-*s  %-10s  %-7s  %s\n", maxTierLen, "Tier", "Name", "Board", "Images")
	fmt.Printf("  %-*s  %-10s  %-7s  %s\n", maxTierLen, "----", "----", "-----", "------")
	for _, p := range presets {
		board := fmt.Sprintf("%dx%d", p.Columns, p.Rows)
		fmt.Printf("  %-*s  %-10s  %-7s  %d\n", maxTierLen, p.Tier, p.Name, board, p.TargetImages)
	}

	fmt.Println()
	fmt.Printf("Scoring: %d, %d, %d and %d points for 4 to 7 images, +%d per extra image\n",
		cfg.Scoring.Points[4], cfg.Scoring.Points[5], cfg.Scoring.Points[6], cfg.Scoring.Points[7],
		cfg.Scoring.ExtraPerImage)
	fmt.Printf("Combo:   +%.1fx per match within %s, up to %.1fx\n",
		cfg.Scoring.ComboStep, cfg.Scoring.ComboWindow, cfg.Scoring.ComboMax)
	fmt.Printf("Catalog: %s (batch %d, %d images built in)\n",
		cfg.Catalog.Source, cfg.Catalog.BatchID, engine.BuiltinCatalog().Len())
	fmt.Printf("Sources: %v\n", catalog.Schemes())

	fmt.Println()
	fmt.Printf("Config loaded from: %s\n", source)
	if path, err := config.UserConfigPath(); err == nil {
		fmt.Printf("User config path:   %s\n", path)
	}
	fmt.Println()
	fmt.Println("Run 'matchleague play --difficulty <tier>' to start on a preset.")
}
