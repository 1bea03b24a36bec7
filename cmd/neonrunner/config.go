package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the tuning YAML",
	Long: `Print the default tuning YAML. Save it to
~/.neonrunner/configs/runner.yaml or ./configs/runner.yaml and edit the
values you want to change; missing keys keep their defaults.

With --resolved, prints the tuning that would actually be used after
applying --config and the search paths.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective tuning instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultRunnerYAML())
		return err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.MarshalRunner(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
