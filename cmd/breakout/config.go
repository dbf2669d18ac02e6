package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/breakout/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game tuning",
	Long: `Print the tuning a round would use, after --config and --difficulty
are applied, as YAML. Save the output to ~/.breakout/breakout.yaml or pass it
with --config to change the game; a file only needs the keys it changes.

Examples:
  breakout config
  breakout config --difficulty hard
  breakout config --defaults > ~/.breakout/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config file with its comments")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	setup, err := loadSetup()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(setup.game)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	ramp := "off"
	if config.NewDifficultyManager(setup.game.Difficulty).IsEnabled() {
		ramp = "on"
	}
	fmt.Printf("# difficulty: %s, speed ramp: %s\n", setup.difficulty, ramp)
	_, err = os.Stdout.Write(data)
	return err
}
