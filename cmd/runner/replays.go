package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-runner/internal/platform/tui"
	"github.com/vovakirdan/desert-runner/internal/replay"
	"github.com/vovakirdan/desert-runner/internal/storage"
)

var (
	flagReplayLimit int
	flagInteractive bool
	flagWatch       bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded runs",
	Long: `Display the most recent recorded runs.

With --interactive, browse them in a table: Enter watches the selected
replay, V verifies it and X deletes it.

Examples:
  runner replays
  runner replays --limit 50
  runner replays --interactive`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Verify or watch a recorded run",
	Long: `Re-simulate a recorded run from its seed and inputs and check that
it reproduces the recorded score. With --watch, play it back in the
terminal instead.

Examples:
  runner replay 12
  runner replay 12 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of replays to show")
	replaysCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse replays in an interactive table")
	replayCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Play the replay back instead of verifying it")
}

// mustOpenStore opens the replay database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runReplays(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagInteractive {
		browseReplays(store)
		return
	}

	replays, err := store.ListReplays(flagReplayLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Println("Recorded runs")
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Finish a run with 'runner play' to record one!")
		return
	}

	fmt.Printf("  %-6s  %-8s  %-8s  %-20s  %-6s  %s\n", "ID", "Score", "Frames", "Seed", "From", "Date")
	fmt.Printf("  %-6s  %-8s  %-8s  %-20s  %-6s  %s\n", "--", "-----", "------", "----", "----", "----")
	for _, r := range replays {
		fmt.Printf("  %-6d  %-8d  %-8d  %-20d  %-6s  %s\n",
			r.ID, r.Score, r.Frames, r.Seed, r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'runner replay <id>' to verify a run or add --watch to see it.")
}

// browseReplays loops between the table and playback until the user quits.
func browseReplays(store *storage.Store) {
	for {
		width, height := terminalSize()
		id, err := tui.RunBrowser(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if id == 0 {
			return
		}
		r, err := store.Replay(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if err := tui.Watch(*r, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store := mustOpenStore()
	r, err := store.Replay(id)
	store.Close()
	if errors.Is(err, storage.ErrReplayNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no replay #%d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'runner replays' to see recorded runs.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagWatch {
		width, height := terminalSize()
		if err := tui.Watch(*r, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	snap, err := replay.Verify(*r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Replay #%d FAILED: %v\n", id, err)
		os.Exit(1)
	}
	fmt.Printf("Replay #%d OK\n", id)
	fmt.Printf("  Seed:   %d\n", r.Seed)
	fmt.Printf("  Score:  %d\n", snap.Score)
	fmt.Printf("  Frames: %d (%s at %d fps)\n", snap.Frame, snap.SimTime, r.TickRate)
	fmt.Printf("  State:  %s\n", snap.State)
}
