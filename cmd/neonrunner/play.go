package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-runner/internal/audio"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Neon Runner in this terminal.

Controls:
  Space/Up/W  - Flip gravity (mouse click works too)
  P/Esc       - Pause
  R           - Restart
  M           - Back to menu (paused or game over)
  Q/Ctrl+C    - Quit

Examples:
  neonrunner play
  neonrunner play --seed 42 --fps 30
  neonrunner play --sound
  neonrunner play --store gdata`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := openApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Tuning:  a.tuning,
		Profile: a.profile(),
		Runs:    a.store,
		Logger:  a.logger,
	}

	if flagSound {
		sm := audio.NewSoundManager(a.logger)
		if err := sm.Initialize(); err != nil {
			a.logger.Warn("sound disabled", "error", err)
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
		}
	}

	a.logger.Info("starting game", "fps", flagFPS, "seed", flagSeed, "width", width, "height", height)
	return tui.Run(opts)
}
