package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-runner/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window.

Controls:
  Left/A     - Steer left
  Right/D    - Steer right
  P          - Pause
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  runner window
  runner window --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()

	// A window leaves the terminal free, so log to stderr unless --log is set.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner"})
	closeLog := func() {}
	if flagLogPath != "" {
		logger, closeLog = openLogger("runner")
	}
	defer closeLog()

	store := openStore()

	runErr := window.Run(window.Options{
		Config:  gameCfg,
		Runtime: runtimeConfig(gameCfg.World.Width, gameCfg.World.Height),
		Store:   store,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
