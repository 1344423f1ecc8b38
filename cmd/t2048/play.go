package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant. Without a variant the menu opens.

Controls:
  Arrows     - Slide the tiles
  +/-        - Grow/shrink the board (starts a new round)
  P          - Pause
  Enter/R    - Play again after a round ends
  Esc/B      - Leave (while paused or after a round)
  Q/Ctrl+C   - Quit

Examples:
  t2048 play
  t2048 play classic
  t2048 play overflow --size 5
  t2048 play classic --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, fmt.Sprintf("Board size %d-%d (default from config)", t2048.MinSize, t2048.MaxSize))
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.Timing.TickRate
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runMenu(cmd, args)
	}

	variantID := args[0]
	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 't2048 list' to see available variants", variantID)
	}

	game, err := registry.Create(variantID)
	if err != nil {
		return err
	}

	if flagSize != 0 {
		sized, ok := game.(*t2048.Game)
		if !ok {
			return fmt.Errorf("variant %q does not support --size", variantID)
		}
		if err := sized.SetSize(flagSize); err != nil {
			return err
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("starting round", "variant", variantID, "seed", cfg.Seed)

	if err := tui.Run(game, tui.SaverFor(store), logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
