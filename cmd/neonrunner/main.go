// neonrunner is a gravity-flipping endless runner for the terminal.
//
// Usage:
//
//	neonrunner                 - Play (same as "neonrunner play")
//	neonrunner play            - Play in this terminal
//	neonrunner serve           - Start SSH server for remote play
//	neonrunner stats           - Show cumulative statistics
//	neonrunner achievements    - List achievements
//	neonrunner scores          - Show the best runs
//	neonrunner reset-stats     - Zero statistics and relock achievements
//	neonrunner config          - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.neonrunner/neonrunner.db)
//	--store <name>    - Profile backend: sqlite or gdata
//	--config <path>   - Tuning YAML
//	--sound           - Enable sound effects
//
// Every flag can also be set with a NEONRUNNER_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/config"
)

const (
	defaultDBPath  = "~/.neonrunner/neonrunner.db"
	defaultLogPath = "~/.neonrunner/neonrunner.log"
	appName        = "neonrunner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrunner",
	Short: "Neon Runner - flip gravity, dodge everything",
	Long: `Neon Runner is an endless runner for the terminal. Your runner sticks to
the floor or the ceiling; flip gravity to dodge the obstacles rushing in,
grab power-ups and chase the high score.

Examples:
  neonrunner
  neonrunner play --seed 42
  neonrunner serve
  neonrunner scores --limit 5
  neonrunner config > ~/.neonrunner/configs/runner.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
	RunE:              runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", defaultDBPath, "Path to the database")
	flags.StringVar(&flagStore, "store", storeSQLite, "Profile backend: sqlite or gdata")
	flags.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	flags.StringVar(&flagLogFile, "log-file", defaultLogPath, "Log file used while the game owns the terminal")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVar(&flagSound, "sound", false, "Enable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetStatsCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags the user did not set from NEONRUNNER_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") && e.FPS > 0 {
		flagFPS = e.FPS
	}
	if !flags.Changed("seed") && e.Seed != 0 {
		flagSeed = e.Seed
	}
	if !flags.Changed("db") && e.DBPath != "" {
		flagDBPath = e.DBPath
	}
	if !flags.Changed("store") && e.Store != "" {
		flagStore = e.Store
	}
	if !flags.Changed("config") && e.ConfigPath != "" {
		flagConfig = e.ConfigPath
	}
	if !flags.Changed("log-file") && e.LogFile != "" {
		flagLogFile = e.LogFile
	}
	if !flags.Changed("log-level") && e.LogLevel != "" {
		flagLogLevel = e.LogLevel
	}
	if !flags.Changed("sound") && e.Sound {
		flagSound = true
	}
	env = e
	return nil
}

// env holds the parsed environment for commands that need more than flags.
var env config.Env
