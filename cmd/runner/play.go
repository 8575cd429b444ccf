package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/desert-runner/internal/platform/tui"
	"github.com/vovakirdan/desert-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/A     - Steer left
  Right/D    - Steer right
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Every finished run is recorded in the replay database.

Examples:
  runner play
  runner play --seed 42 --fps 30
  runner play --config ./my-desert.yaml --log runner.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the replay database. Failure only disables recording.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()
	logger, closeLog := openLogger("runner")
	defer closeLog()

	width, height := terminalSize()

	store := openStore()

	runErr := tui.Run(tui.Options{
		Config:  gameCfg,
		Runtime: runtimeConfig(width, height),
		Store:   store,
		Logger:  logger,
		Source:  "tui",
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
