package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

var (
	flagLimit     int
	flagResetYes  bool
	flagResetRuns bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

Examples:
  neonrunner scores
  neonrunner scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cumulative statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and which are unlocked",
	Args:  cobra.NoArgs,
	RunE:  runAchievements,
}

var resetStatsCmd = &cobra.Command{
	Use:   "reset-stats",
	Short: "Zero statistics and relock achievements",
	Long: `Zero all cumulative statistics and relock every achievement.
Settings are kept. Pass --runs to also clear the run history.

Examples:
  neonrunner reset-stats --yes
  neonrunner reset-stats --yes --runs`,
	Args: cobra.NoArgs,
	RunE: runResetStats,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	resetStatsCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Confirm the reset")
	resetStatsCmd.Flags().BoolVar(&flagResetRuns, "runs", false, "Also clear the run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	runs, err := a.store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Neon Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonrunner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-7s  %-7s  %s\n", "Rank", "Score", "Level", "Combo", "Time", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-7s  %-7s  %s\n", "----", "-----", "-----", "-----", "----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-7s  %-7s  %s\n",
			i+1, r.Score, r.Level, r.MaxCombo, r.Duration.Round(time.Second), r.Difficulty,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runStats(_ *cobra.Command, _ []string) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.profile().LoadStats()
	settings := a.profile().LoadSettings()

	fmt.Println("Statistics - Neon Runner")
	fmt.Println()
	fmt.Printf("  %-20s %d\n", "High score", st.HighScore)
	fmt.Printf("  %-20s %d\n", "Games played", st.GamesPlayed)
	fmt.Printf("  %-20s %s\n", "Time played", st.TimePlayed())
	fmt.Printf("  %-20s %d\n", "Obstacles dodged", st.ObstaclesDodged)
	fmt.Printf("  %-20s %d\n", "Perfect dodges", st.PerfectDodges)
	fmt.Printf("  %-20s %d\n", "Power-ups", st.PowerUpsCollected)
	fmt.Println()

	summary, err := a.store.RunSummary()
	if err != nil {
		return err
	}
	if summary.Runs > 0 {
		fmt.Println("Run history")
		fmt.Printf("  %-20s %d\n", "Runs recorded", summary.Runs)
		fmt.Printf("  %-20s %.0f\n", "Average score", summary.AvgScore)
		fmt.Printf("  %-20s %d\n", "Best combo", summary.BestCombo)
		fmt.Printf("  %-20s %s\n", "Last played", summary.LastPlayed.Local().Format("2006-01-02 15:04"))
		fmt.Println()
	}

	fmt.Printf("Settings: difficulty %s, effects %s, particles %d%%, shake %v\n",
		settings.Difficulty, settings.Effects, settings.ParticleDensity, settings.ScreenShake)
	return nil
}

func runAchievements(_ *cobra.Command, _ []string) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	unlocked := a.profile().LoadAchievements()
	count := 0
	for _, u := range unlocked {
		if u {
			count++
		}
	}

	fmt.Printf("Achievements - %d / %d unlocked\n", count, len(runner.Achievements))
	fmt.Println()
	for i, ach := range runner.Achievements {
		mark := " "
		if unlocked[i] {
			mark = "★"
		}
		fmt.Printf("  [%s] %-16s %s\n", mark, ach.Name, ach.Description)
	}
	return nil
}

func runResetStats(_ *cobra.Command, _ []string) error {
	if !flagResetYes {
		return errors.New("refusing to reset without --yes")
	}

	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	// The game relocks achievements and persists through the profile.
	p := a.profile()
	game := runner.New(runtimeFromFlags(),
		runner.WithConfig(a.tuning),
		runner.WithProgress(p.LoadStats(), p.LoadAchievements()),
		runner.WithSaver(p),
		runner.WithLogger(a.logger),
	)
	game.ResetStats()

	if flagResetRuns {
		if err := a.store.ClearRuns(); err != nil {
			return err
		}
	}

	a.logger.Info("statistics reset", "runs_cleared", flagResetRuns)
	fmt.Println("Statistics reset.")
	return nil
}
