package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

// Rows drawn around the grid: title, status line and the help footer.
const chromeRows = 3

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  W/Up       - Rotate clockwise
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Keys can be changed in the config file.

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("blockfall needs an interactive terminal")
	}
	if w, h, err := term.GetSize(fd); err == nil {
		if w < engine.Width || h < engine.Height+chromeRows {
			return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, engine.Width, engine.Height+chromeRows)
		}
	}

	cfg, source, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source, "gravity", cfg.GravityPeriod(), "fps", cfg.Display.FPS)

	session, err := engine.NewSession(engine.Options{
		GravityPeriod: cfg.GravityPeriod(),
		Seed:          cfg.Seed,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	var changes <-chan config.Change
	if flagWatch {
		if source == config.SourceEmbedded {
			logger.Warn("no config file to watch")
		} else {
			w, err := config.NewWatcher(source)
			if err != nil {
				return err
			}
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()
			changes = w.Changes
			logger.Info("watching config", "path", w.Path)
		}
	}

	if err := tui.Run(cmd.Context(), session, cfg, changes, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if session.State() == engine.StateGameOver {
		fmt.Println("Game over")
	}
	return nil
}
