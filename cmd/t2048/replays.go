package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagReplayVariant string
	flagReplayLimit   int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded rounds",
	Long: `List the most recent recorded rounds.

Rounds are stored as a seed plus the moves made, never as a score. Use
'replays show <id>' to play a round back and see its final board.

Examples:
  t2048 replays
  t2048 replays --variant overflow --limit 5
  t2048 replays show 12`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replayShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Replay a recorded round",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayShow,
}

func init() {
	replaysCmd.Flags().StringVar(&flagReplayVariant, "variant", "", "Only show this variant")
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of rounds to list")
	replaysCmd.AddCommand(replayShowCmd)
}

func openStoreOrFail() (*storage.Store, error) {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening replay database: %w", err)
	}
	return store, nil
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := openStoreOrFail()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.RecentReplays(flagReplayVariant, flagReplayLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' and finish a round to record one.")
		return nil
	}

	fmt.Printf("  %-6s  %-10s  %-5s  %-6s  %-10s  %s\n", "ID", "Variant", "Size", "Moves", "Outcome", "Date")
	fmt.Printf("  %-6s  %-10s  %-5s  %-6s  %-10s  %s\n", "--", "-------", "----", "-----", "-------", "----")

	for _, e := range entries {
		fmt.Printf("  %-6d  %-10s  %-5s  %-6d  %-10s  %s\n",
			e.ID,
			e.Variant,
			fmt.Sprintf("%dx%d", e.Size, e.Size),
			e.MoveCount(),
			e.Outcome,
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

func runReplayShow(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := openStoreOrFail()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Replay(id)
	if err != nil {
		return err
	}

	rec, err := tui.RecordingFromEntry(entry)
	if err != nil {
		return err
	}

	snap, err := t2048.Replay(rec)
	if err != nil {
		return err
	}

	fmt.Printf("Replay #%d - %s %dx%d, seed %d\n", entry.ID, entry.Variant, entry.Size, entry.Size, entry.Seed)
	fmt.Println()
	fmt.Print(snap.Board.String())
	fmt.Println()
	fmt.Printf("Moves:    %d\n", snap.Moves)
	fmt.Printf("Score:    %d\n", snap.Score)
	fmt.Printf("Max tile: %d\n", snap.MaxTile)
	fmt.Printf("Outcome:  %s\n", entry.Outcome)
	return nil
}
