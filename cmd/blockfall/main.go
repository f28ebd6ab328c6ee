// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                 - Play (same as "blockfall play")
//	blockfall play            - Play a game
//	blockfall shapes [id]     - Print the pieces in every rotation
//	blockfall config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Config file (YAML or TOML)
//	--fps <rate>          - Frame rate (default: 30)
//	--seed <value>        - Shape picker seed (0 = random based on time)
//	--gravity-ms <ms>     - Gravity period (default: 300)
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error
//	--watch               - Reload the theme and keys when the config file changes
//
// Every numeric flag can also be set with a BLOCKFALL_* environment variable
// (BLOCKFALL_GRAVITY_MS, BLOCKFALL_FPS, BLOCKFALL_SEED, BLOCKFALL_GAME_OVER_MS).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagWatch    bool

	// settings layers BLOCKFALL_* environment variables and changed flags
	// over the config file.
	settings = viper.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - stack falling pieces in your terminal",
	Long: `Blockfall is a falling-block puzzle game played in the terminal.
Complete a row to clear it; the game ends when a new piece cannot enter
the playfield.

Available commands:
  play     - Play a game (default)
  shapes   - Show every piece in all four rotations
  config   - Print the effective configuration

Examples:
  blockfall
  blockfall play --gravity-ms 200
  blockfall shapes T
  BLOCKFALL_FPS=60 blockfall config`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	cobra.OnInitialize(initEnv)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	pf.Int("fps", 30, "Frame rate (frames per second)")
	pf.Int64("seed", 0, "Shape picker seed (0 = random based on time)")
	pf.Int("gravity-ms", 300, "Milliseconds between gravity steps")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagWatch, "watch", false, "Reload theme and keys when the config file changes")

	// Only flags the user actually set override the config file.
	_ = settings.BindPFlag(config.KeyFPS, pf.Lookup("fps"))
	_ = settings.BindPFlag(config.KeySeed, pf.Lookup("seed"))
	_ = settings.BindPFlag(config.KeyGravityMS, pf.Lookup("gravity-ms"))

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

func initEnv() {
	settings.SetEnvPrefix("BLOCKFALL")
	settings.AutomaticEnv()
}

// loadSettings resolves the config file and applies environment and flag
// overrides. It returns the config and the file it came from.
func loadSettings() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	cfg, err = config.Overlay(cfg, settings)
	if err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}
